package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"offerdirectory/internal/domain"
)

func sampleOffers() []domain.Offer {
	return []domain.Offer{
		domain.NewOffer("B", decimal.NewFromInt(5)),
		domain.NewOffer("A", decimal.NewFromInt(10)),
	}
}

func renderString(t *testing.T, s domain.ViewState) string {
	t.Helper()
	r, err := NewDirectoryRenderer()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, s))
	return buf.String()
}

func TestNewDirectoryPage(t *testing.T) {
	s := domain.NewViewState().Loaded(sampleOffers()).SelectOrder(domain.SortNameAsc)
	s, err := s.ChangeRowsPerPage("5")
	require.NoError(t, err)

	p := NewDirectoryPage(s)

	require.Equal(t, domain.StatusLoaded, p.Status)
	require.Len(t, p.Rows, 2)
	assert.Equal(t, "A", p.Rows[0].Name)
	assert.Equal(t, "0:A", p.Rows[0].Key)
	assert.Equal(t, "1:B", p.Rows[1].Key)
	assert.Equal(t, 3, p.EmptyRows)
	assert.Equal(t, 3*domain.FillerRowHeight, p.FillerHeight)
	assert.True(t, p.OrderChosen)
	assert.Equal(t, 1, p.Pager.From)
	assert.Equal(t, 2, p.Pager.To)
	assert.Equal(t, 2, p.Pager.Total)
	assert.False(t, p.Pager.HasPrev)
	assert.False(t, p.Pager.HasNext)

	var selected []string
	for _, o := range p.Pager.Options {
		if o.Selected {
			selected = append(selected, o.Value)
		}
	}
	assert.Equal(t, []string{"5"}, selected)
}

func TestNewDirectoryPage_DuplicateNamesKeepDistinctKeys(t *testing.T) {
	offers := []domain.Offer{
		domain.NewOfferWithoutDiscount("Same"),
		domain.NewOfferWithoutDiscount("Same"),
	}
	p := NewDirectoryPage(domain.NewViewState().Loaded(offers))
	require.Len(t, p.Rows, 2)
	assert.NotEqual(t, p.Rows[0].Key, p.Rows[1].Key)
	assert.Equal(t, "0", p.Rows[0].Discount)
}

func TestDirectoryRenderer_Loading(t *testing.T) {
	out := renderString(t, domain.NewViewState())

	assert.Contains(t, out, "Loading...")
	assert.Contains(t, out, `role="progressbar"`)
	assert.Contains(t, out, `http-equiv="refresh"`)
	assert.NotContains(t, out, "<table")
	assert.NotContains(t, out, `name="order"`)
}

func TestDirectoryRenderer_Failed(t *testing.T) {
	out := renderString(t, domain.NewViewState().Failed(errors.New("offer list returned status: 502")))

	assert.Contains(t, out, "Offers could not be loaded.")
	assert.Contains(t, out, "status: 502")
	assert.NotContains(t, out, "<table")
	assert.NotContains(t, out, "Loading...")
}

func TestDirectoryRenderer_Loaded(t *testing.T) {
	offers := append(sampleOffers(), domain.NewOfferWithoutDiscount("<script>"))
	s := domain.NewViewState().Loaded(offers).SelectOrder(domain.SortDiscountDesc)

	out := renderString(t, s)

	assert.Contains(t, out, "<table")
	assert.Contains(t, out, "<b>Offers</b>")
	assert.Contains(t, out, "<b>Discount</b>")
	assert.Contains(t, out, "background-color: #3759F3")
	assert.Contains(t, out, `<option value="discount-mayor" selected>`)
	assert.Contains(t, out, "1-3 of 3")
	// 10 rows per page, 3 shown
	assert.Contains(t, out, "height: 371px")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "<td><script>")
	assert.Less(t, strings.Index(out, "<td>A</td>"), strings.Index(out, "<td>B</td>"))
	assert.Contains(t, out, "<td>&lt;script&gt;</td><td>0</td>")
}

func TestDirectoryRenderer_AllRowsHasNoFiller(t *testing.T) {
	s, err := domain.NewViewState().Loaded(sampleOffers()).ChangeRowsPerPage("-1")
	require.NoError(t, err)

	out := renderString(t, s)

	assert.NotContains(t, out, `class="filler"`)
	assert.Contains(t, out, `<option value="-1" selected>All</option>`)
	assert.Contains(t, out, "1-2 of 2")
}
