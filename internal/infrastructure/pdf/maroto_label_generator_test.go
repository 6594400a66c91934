package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/jhoicas/prepperstore-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateItemLabel(t *testing.T) {
	threshold := decimal.NewFromInt(2)
	item := &entity.Item{ID: 1, Name: "Rice 5kg", Threshold: &threshold}
	idents := []*entity.Identifier{
		{ID: 1, ItemID: 1, Identifier: "4006381333931"},
		{ID: 2, ItemID: 1, Identifier: "RICE-5KG"},
	}

	out, err := NewMarotoLabelGenerator().GenerateItemLabel(context.Background(), item, idents)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
