package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestToBSON(t *testing.T) {
	assert.Equal(t, bson.M{}, toBSON(nil))
	assert.Equal(t, bson.M{"city": "Mumbai"}, toBSON(Eq{Field: "city", Value: "Mumbai"}))
	assert.Equal(t,
		bson.M{"name": bson.M{"$regex": "metro"}},
		toBSON(Match{Field: "name", Pattern: "metro"}),
	)

	metro := toBSON(Or{
		Eq{Field: "organization_type", Value: MetroOrganizationType},
		Match{Field: "organization_name", Pattern: MetroNamePattern, IgnoreCase: true},
	})
	assert.Equal(t, bson.M{"$or": bson.A{
		bson.M{"organization_type": "Metro Authority"},
		bson.M{"organization_name": bson.M{"$regex": "Metro|BMRCL", "$options": "i"}},
	}}, metro)
}
