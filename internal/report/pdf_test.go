package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imobiliare/internal/domain"
)

func TestGenerate(t *testing.T) {
	g := NewGenerator()

	apartments := []domain.Apartment{
		{
			Address: "Str. Avram Iancu 12",
			City:    "Cluj-Napoca",
			Rooms:   2,
			Surface: 54,
			Price:   95000,
			Owner:   &domain.Owner{Name: "Ion Popescu"},
		},
		{
			Address: "Bd. Unirii 40",
			City:    "Bucuresti",
			Rooms:   3,
			Surface: 78,
			Price:   150000,
		},
	}

	data, err := g.Generate(apartments)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerateEmptyWishlist(t *testing.T) {
	g := NewGenerator()

	data, err := g.Generate(nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}
