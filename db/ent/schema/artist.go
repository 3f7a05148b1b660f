package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/arnav-deshpande/kalakaar/internal/entity"
)

type Artist struct{ ent.Schema }

func (Artist) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "artists"},
	}
}

func (Artist) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("artist_name").NotEmpty(),
		// denormalized search columns; the full values live inside profile
		field.String("guru_name").Optional().Nillable(),
		field.String("gharana_name").Optional().Nillable(),
		field.String("original_filename").NotEmpty(),
		field.Text("extracted_text").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("status").NotEmpty(),
		field.String("extraction_method").NotEmpty(),
		field.JSON("profile", &entity.ArtistProfile{}).
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Artist) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("artist_name"),
		index.Fields("guru_name"),
		index.Fields("gharana_name"),
	}
}
