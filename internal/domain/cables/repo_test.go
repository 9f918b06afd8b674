package cables

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/techvault/internal/domain/filter"
	"github.com/Spok95/techvault/internal/store"
	"github.com/Spok95/techvault/internal/validate"
)

func TestFilterCables(t *testing.T) {
	cs, err := NewRepo(store.NewMemory()).List(context.Background())
	require.NoError(t, err)

	inUse := filter.Apply(cs, "", filter.Facets{"status": "In Use"})
	require.Len(t, inUse, 3)
	assert.Equal(t, "USB-C to USB-A Cable", inUse[0].Name)

	hdmi := filter.Apply(cs, "hdmi", filter.Facets{"category": filter.All})
	assert.Len(t, hdmi, 2)

	assert.Equal(t, []string{"Video", "Data", "Network", "Charging", "Adapter", "Audio"}, filter.Distinct(cs, "category"))
}

func TestCreateDefaultsToAvailable(t *testing.T) {
	r := NewRepo(store.NewMemory())
	c, err := r.Create(context.Background(), Input{Name: "Thunderbolt 4", Category: "Data", Length: "2ft", Connector: "USB-C"})
	require.NoError(t, err)
	assert.Equal(t, StatusAvailable, c.Status)
	assert.Equal(t, int64(9), c.ID)

	_, err = r.Create(context.Background(), Input{Name: "Broken", Category: "Data", Status: "Lost"})
	var verr validate.Errors
	assert.ErrorAs(t, err, &verr)
}
