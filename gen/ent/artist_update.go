// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arnav-deshpande/kalakaar/gen/ent/artist"
	"github.com/arnav-deshpande/kalakaar/gen/ent/predicate"
	"github.com/arnav-deshpande/kalakaar/internal/entity"
)

// ArtistUpdate is the builder for updating Artist entities.
type ArtistUpdate struct {
	config
	hooks    []Hook
	mutation *ArtistMutation
}

// Where appends a list predicates to the ArtistUpdate builder.
func (_u *ArtistUpdate) Where(ps ...predicate.Artist) *ArtistUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetArtistName sets the "artist_name" field.
func (_u *ArtistUpdate) SetArtistName(v string) *ArtistUpdate {
	_u.mutation.SetArtistName(v)
	return _u
}

// SetNillableArtistName sets the "artist_name" field if the given value is not nil.
func (_u *ArtistUpdate) SetNillableArtistName(v *string) *ArtistUpdate {
	if v != nil {
		_u.SetArtistName(*v)
	}
	return _u
}

// SetGuruName sets the "guru_name" field.
func (_u *ArtistUpdate) SetGuruName(v string) *ArtistUpdate {
	_u.mutation.SetGuruName(v)
	return _u
}

// SetNillableGuruName sets the "guru_name" field if the given value is not nil.
func (_u *ArtistUpdate) SetNillableGuruName(v *string) *ArtistUpdate {
	if v != nil {
		_u.SetGuruName(*v)
	}
	return _u
}

// ClearGuruName clears the value of the "guru_name" field.
func (_u *ArtistUpdate) ClearGuruName() *ArtistUpdate {
	_u.mutation.ClearGuruName()
	return _u
}

// SetGharanaName sets the "gharana_name" field.
func (_u *ArtistUpdate) SetGharanaName(v string) *ArtistUpdate {
	_u.mutation.SetGharanaName(v)
	return _u
}

// SetNillableGharanaName sets the "gharana_name" field if the given value is not nil.
func (_u *ArtistUpdate) SetNillableGharanaName(v *string) *ArtistUpdate {
	if v != nil {
		_u.SetGharanaName(*v)
	}
	return _u
}

// ClearGharanaName clears the value of the "gharana_name" field.
func (_u *ArtistUpdate) ClearGharanaName() *ArtistUpdate {
	_u.mutation.ClearGharanaName()
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *ArtistUpdate) SetOriginalFilename(v string) *ArtistUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *ArtistUpdate) SetNillableOriginalFilename(v *string) *ArtistUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *ArtistUpdate) SetExtractedText(v string) *ArtistUpdate {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *ArtistUpdate) SetNillableExtractedText(v *string) *ArtistUpdate {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ArtistUpdate) SetStatus(v string) *ArtistUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ArtistUpdate) SetNillableStatus(v *string) *ArtistUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtractionMethod sets the "extraction_method" field.
func (_u *ArtistUpdate) SetExtractionMethod(v string) *ArtistUpdate {
	_u.mutation.SetExtractionMethod(v)
	return _u
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_u *ArtistUpdate) SetNillableExtractionMethod(v *string) *ArtistUpdate {
	if v != nil {
		_u.SetExtractionMethod(*v)
	}
	return _u
}

// SetProfile sets the "profile" field.
func (_u *ArtistUpdate) SetProfile(v *entity.ArtistProfile) *ArtistUpdate {
	_u.mutation.SetProfile(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ArtistUpdate) SetCreatedAt(v time.Time) *ArtistUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ArtistUpdate) SetNillableCreatedAt(v *time.Time) *ArtistUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ArtistUpdate) SetUpdatedAt(v time.Time) *ArtistUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ArtistMutation object of the builder.
func (_u *ArtistUpdate) Mutation() *ArtistMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArtistUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArtistUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArtistUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArtistUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ArtistUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := artist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArtistUpdate) check() error {
	if v, ok := _u.mutation.ArtistName(); ok {
		if err := artist.ArtistNameValidator(v); err != nil {
			return &ValidationError{Name: "artist_name", err: fmt.Errorf(`ent: validator failed for field "Artist.artist_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := artist.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Artist.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := artist.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Artist.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionMethod(); ok {
		if err := artist.ExtractionMethodValidator(v); err != nil {
			return &ValidationError{Name: "extraction_method", err: fmt.Errorf(`ent: validator failed for field "Artist.extraction_method": %w`, err)}
		}
	}
	return nil
}

func (_u *ArtistUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(artist.Table, artist.Columns, sqlgraph.NewFieldSpec(artist.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ArtistName(); ok {
		_spec.SetField(artist.FieldArtistName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GuruName(); ok {
		_spec.SetField(artist.FieldGuruName, field.TypeString, value)
	}
	if _u.mutation.GuruNameCleared() {
		_spec.ClearField(artist.FieldGuruName, field.TypeString)
	}
	if value, ok := _u.mutation.GharanaName(); ok {
		_spec.SetField(artist.FieldGharanaName, field.TypeString, value)
	}
	if _u.mutation.GharanaNameCleared() {
		_spec.ClearField(artist.FieldGharanaName, field.TypeString)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(artist.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(artist.FieldExtractedText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(artist.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionMethod(); ok {
		_spec.SetField(artist.FieldExtractionMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(artist.FieldProfile, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(artist.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(artist.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{artist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArtistUpdateOne is the builder for updating a single Artist entity.
type ArtistUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArtistMutation
}

// SetArtistName sets the "artist_name" field.
func (_u *ArtistUpdateOne) SetArtistName(v string) *ArtistUpdateOne {
	_u.mutation.SetArtistName(v)
	return _u
}

// SetNillableArtistName sets the "artist_name" field if the given value is not nil.
func (_u *ArtistUpdateOne) SetNillableArtistName(v *string) *ArtistUpdateOne {
	if v != nil {
		_u.SetArtistName(*v)
	}
	return _u
}

// SetGuruName sets the "guru_name" field.
func (_u *ArtistUpdateOne) SetGuruName(v string) *ArtistUpdateOne {
	_u.mutation.SetGuruName(v)
	return _u
}

// SetNillableGuruName sets the "guru_name" field if the given value is not nil.
func (_u *ArtistUpdateOne) SetNillableGuruName(v *string) *ArtistUpdateOne {
	if v != nil {
		_u.SetGuruName(*v)
	}
	return _u
}

// ClearGuruName clears the value of the "guru_name" field.
func (_u *ArtistUpdateOne) ClearGuruName() *ArtistUpdateOne {
	_u.mutation.ClearGuruName()
	return _u
}

// SetGharanaName sets the "gharana_name" field.
func (_u *ArtistUpdateOne) SetGharanaName(v string) *ArtistUpdateOne {
	_u.mutation.SetGharanaName(v)
	return _u
}

// SetNillableGharanaName sets the "gharana_name" field if the given value is not nil.
func (_u *ArtistUpdateOne) SetNillableGharanaName(v *string) *ArtistUpdateOne {
	if v != nil {
		_u.SetGharanaName(*v)
	}
	return _u
}

// ClearGharanaName clears the value of the "gharana_name" field.
func (_u *ArtistUpdateOne) ClearGharanaName() *ArtistUpdateOne {
	_u.mutation.ClearGharanaName()
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *ArtistUpdateOne) SetOriginalFilename(v string) *ArtistUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *ArtistUpdateOne) SetNillableOriginalFilename(v *string) *ArtistUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *ArtistUpdateOne) SetExtractedText(v string) *ArtistUpdateOne {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *ArtistUpdateOne) SetNillableExtractedText(v *string) *ArtistUpdateOne {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ArtistUpdateOne) SetStatus(v string) *ArtistUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ArtistUpdateOne) SetNillableStatus(v *string) *ArtistUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtractionMethod sets the "extraction_method" field.
func (_u *ArtistUpdateOne) SetExtractionMethod(v string) *ArtistUpdateOne {
	_u.mutation.SetExtractionMethod(v)
	return _u
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_u *ArtistUpdateOne) SetNillableExtractionMethod(v *string) *ArtistUpdateOne {
	if v != nil {
		_u.SetExtractionMethod(*v)
	}
	return _u
}

// SetProfile sets the "profile" field.
func (_u *ArtistUpdateOne) SetProfile(v *entity.ArtistProfile) *ArtistUpdateOne {
	_u.mutation.SetProfile(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ArtistUpdateOne) SetCreatedAt(v time.Time) *ArtistUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ArtistUpdateOne) SetNillableCreatedAt(v *time.Time) *ArtistUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ArtistUpdateOne) SetUpdatedAt(v time.Time) *ArtistUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ArtistMutation object of the builder.
func (_u *ArtistUpdateOne) Mutation() *ArtistMutation {
	return _u.mutation
}

// Where appends a list predicates to the ArtistUpdate builder.
func (_u *ArtistUpdateOne) Where(ps ...predicate.Artist) *ArtistUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArtistUpdateOne) Select(field string, fields ...string) *ArtistUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Artist entity.
func (_u *ArtistUpdateOne) Save(ctx context.Context) (*Artist, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArtistUpdateOne) SaveX(ctx context.Context) *Artist {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArtistUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArtistUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ArtistUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := artist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArtistUpdateOne) check() error {
	if v, ok := _u.mutation.ArtistName(); ok {
		if err := artist.ArtistNameValidator(v); err != nil {
			return &ValidationError{Name: "artist_name", err: fmt.Errorf(`ent: validator failed for field "Artist.artist_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := artist.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Artist.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := artist.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Artist.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionMethod(); ok {
		if err := artist.ExtractionMethodValidator(v); err != nil {
			return &ValidationError{Name: "extraction_method", err: fmt.Errorf(`ent: validator failed for field "Artist.extraction_method": %w`, err)}
		}
	}
	return nil
}

func (_u *ArtistUpdateOne) sqlSave(ctx context.Context) (_node *Artist, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(artist.Table, artist.Columns, sqlgraph.NewFieldSpec(artist.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Artist.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, artist.FieldID)
		for _, f := range fields {
			if !artist.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != artist.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ArtistName(); ok {
		_spec.SetField(artist.FieldArtistName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GuruName(); ok {
		_spec.SetField(artist.FieldGuruName, field.TypeString, value)
	}
	if _u.mutation.GuruNameCleared() {
		_spec.ClearField(artist.FieldGuruName, field.TypeString)
	}
	if value, ok := _u.mutation.GharanaName(); ok {
		_spec.SetField(artist.FieldGharanaName, field.TypeString, value)
	}
	if _u.mutation.GharanaNameCleared() {
		_spec.ClearField(artist.FieldGharanaName, field.TypeString)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(artist.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(artist.FieldExtractedText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(artist.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionMethod(); ok {
		_spec.SetField(artist.FieldExtractionMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(artist.FieldProfile, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(artist.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(artist.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Artist{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{artist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
