// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arnav-deshpande/kalakaar/gen/ent/artist"
	"github.com/arnav-deshpande/kalakaar/internal/entity"
	"github.com/google/uuid"
)

// ArtistCreate is the builder for creating a Artist entity.
type ArtistCreate struct {
	config
	mutation *ArtistMutation
	hooks    []Hook
}

// SetArtistName sets the "artist_name" field.
func (_c *ArtistCreate) SetArtistName(v string) *ArtistCreate {
	_c.mutation.SetArtistName(v)
	return _c
}

// SetGuruName sets the "guru_name" field.
func (_c *ArtistCreate) SetGuruName(v string) *ArtistCreate {
	_c.mutation.SetGuruName(v)
	return _c
}

// SetNillableGuruName sets the "guru_name" field if the given value is not nil.
func (_c *ArtistCreate) SetNillableGuruName(v *string) *ArtistCreate {
	if v != nil {
		_c.SetGuruName(*v)
	}
	return _c
}

// SetGharanaName sets the "gharana_name" field.
func (_c *ArtistCreate) SetGharanaName(v string) *ArtistCreate {
	_c.mutation.SetGharanaName(v)
	return _c
}

// SetNillableGharanaName sets the "gharana_name" field if the given value is not nil.
func (_c *ArtistCreate) SetNillableGharanaName(v *string) *ArtistCreate {
	if v != nil {
		_c.SetGharanaName(*v)
	}
	return _c
}

// SetOriginalFilename sets the "original_filename" field.
func (_c *ArtistCreate) SetOriginalFilename(v string) *ArtistCreate {
	_c.mutation.SetOriginalFilename(v)
	return _c
}

// SetExtractedText sets the "extracted_text" field.
func (_c *ArtistCreate) SetExtractedText(v string) *ArtistCreate {
	_c.mutation.SetExtractedText(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ArtistCreate) SetStatus(v string) *ArtistCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetExtractionMethod sets the "extraction_method" field.
func (_c *ArtistCreate) SetExtractionMethod(v string) *ArtistCreate {
	_c.mutation.SetExtractionMethod(v)
	return _c
}

// SetProfile sets the "profile" field.
func (_c *ArtistCreate) SetProfile(v *entity.ArtistProfile) *ArtistCreate {
	_c.mutation.SetProfile(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ArtistCreate) SetCreatedAt(v time.Time) *ArtistCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ArtistCreate) SetNillableCreatedAt(v *time.Time) *ArtistCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ArtistCreate) SetUpdatedAt(v time.Time) *ArtistCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ArtistCreate) SetNillableUpdatedAt(v *time.Time) *ArtistCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ArtistCreate) SetID(v uuid.UUID) *ArtistCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ArtistCreate) SetNillableID(v *uuid.UUID) *ArtistCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ArtistMutation object of the builder.
func (_c *ArtistCreate) Mutation() *ArtistMutation {
	return _c.mutation
}

// Save creates the Artist in the database.
func (_c *ArtistCreate) Save(ctx context.Context) (*Artist, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArtistCreate) SaveX(ctx context.Context) *Artist {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArtistCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArtistCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArtistCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := artist.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := artist.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := artist.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArtistCreate) check() error {
	if _, ok := _c.mutation.ArtistName(); !ok {
		return &ValidationError{Name: "artist_name", err: errors.New(`ent: missing required field "Artist.artist_name"`)}
	}
	if v, ok := _c.mutation.ArtistName(); ok {
		if err := artist.ArtistNameValidator(v); err != nil {
			return &ValidationError{Name: "artist_name", err: fmt.Errorf(`ent: validator failed for field "Artist.artist_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OriginalFilename(); !ok {
		return &ValidationError{Name: "original_filename", err: errors.New(`ent: missing required field "Artist.original_filename"`)}
	}
	if v, ok := _c.mutation.OriginalFilename(); ok {
		if err := artist.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Artist.original_filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractedText(); !ok {
		return &ValidationError{Name: "extracted_text", err: errors.New(`ent: missing required field "Artist.extracted_text"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Artist.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := artist.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Artist.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractionMethod(); !ok {
		return &ValidationError{Name: "extraction_method", err: errors.New(`ent: missing required field "Artist.extraction_method"`)}
	}
	if v, ok := _c.mutation.ExtractionMethod(); ok {
		if err := artist.ExtractionMethodValidator(v); err != nil {
			return &ValidationError{Name: "extraction_method", err: fmt.Errorf(`ent: validator failed for field "Artist.extraction_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Profile(); !ok {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required field "Artist.profile"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Artist.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Artist.updated_at"`)}
	}
	return nil
}

func (_c *ArtistCreate) sqlSave(ctx context.Context) (*Artist, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ArtistCreate) createSpec() (*Artist, *sqlgraph.CreateSpec) {
	var (
		_node = &Artist{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(artist.Table, sqlgraph.NewFieldSpec(artist.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ArtistName(); ok {
		_spec.SetField(artist.FieldArtistName, field.TypeString, value)
		_node.ArtistName = value
	}
	if value, ok := _c.mutation.GuruName(); ok {
		_spec.SetField(artist.FieldGuruName, field.TypeString, value)
		_node.GuruName = &value
	}
	if value, ok := _c.mutation.GharanaName(); ok {
		_spec.SetField(artist.FieldGharanaName, field.TypeString, value)
		_node.GharanaName = &value
	}
	if value, ok := _c.mutation.OriginalFilename(); ok {
		_spec.SetField(artist.FieldOriginalFilename, field.TypeString, value)
		_node.OriginalFilename = value
	}
	if value, ok := _c.mutation.ExtractedText(); ok {
		_spec.SetField(artist.FieldExtractedText, field.TypeString, value)
		_node.ExtractedText = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(artist.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExtractionMethod(); ok {
		_spec.SetField(artist.FieldExtractionMethod, field.TypeString, value)
		_node.ExtractionMethod = value
	}
	if value, ok := _c.mutation.Profile(); ok {
		_spec.SetField(artist.FieldProfile, field.TypeJSON, value)
		_node.Profile = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(artist.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(artist.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ArtistCreateBulk is the builder for creating many Artist entities in bulk.
type ArtistCreateBulk struct {
	config
	err      error
	builders []*ArtistCreate
}

// Save creates the Artist entities in the database.
func (_c *ArtistCreateBulk) Save(ctx context.Context) ([]*Artist, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Artist, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArtistMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ArtistCreateBulk) SaveX(ctx context.Context) []*Artist {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArtistCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArtistCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
