// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArtistsColumns holds the columns for the "artists" table.
	ArtistsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "artist_name", Type: field.TypeString},
		{Name: "guru_name", Type: field.TypeString, Nullable: true},
		{Name: "gharana_name", Type: field.TypeString, Nullable: true},
		{Name: "original_filename", Type: field.TypeString},
		{Name: "extracted_text", Type: field.TypeString, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "status", Type: field.TypeString},
		{Name: "extraction_method", Type: field.TypeString},
		{Name: "profile", Type: field.TypeJSON, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ArtistsTable holds the schema information for the "artists" table.
	ArtistsTable = &schema.Table{
		Name:       "artists",
		Columns:    ArtistsColumns,
		PrimaryKey: []*schema.Column{ArtistsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "artist_artist_name",
				Unique:  false,
				Columns: []*schema.Column{ArtistsColumns[1]},
			},
			{
				Name:    "artist_guru_name",
				Unique:  false,
				Columns: []*schema.Column{ArtistsColumns[2]},
			},
			{
				Name:    "artist_gharana_name",
				Unique:  false,
				Columns: []*schema.Column{ArtistsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArtistsTable,
	}
)

func init() {
	ArtistsTable.Annotation = &entsql.Annotation{
		Table: "artists",
	}
}
