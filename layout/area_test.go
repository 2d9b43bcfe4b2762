package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/blockify/model"
)

func TestNewPageArea(t *testing.T) {
	page := model.NewPage(100, 100)
	page.AddElement(makeChar("a", 0, 10, 10, 5, 10))
	page.AddElement(&model.Figure{BBox: model.Rect{MinX: 50, MinY: 50, MaxX: 90, MaxY: 90}, Order: 1})
	page.AddElement(makeChar("z", 2, 200, 200, 5, 10)) // off page

	area, err := NewPageArea(page, nil)
	require.NoError(t, err)

	assert.True(t, area.IsTextAreaOfPage())
	assert.Equal(t, page.BBox, area.Rect())
	assert.Equal(t, 2, area.Len())
	assert.Len(t, area.Characters(), 1)
	assert.NotNil(t, area.Document())
}

func TestNewPageArea_Errors(t *testing.T) {
	_, err := NewPageArea(nil, nil)
	assert.ErrorIs(t, err, ErrNilArea)

	page := model.NewPage(100, 100)
	page.AddElement(&model.Character{Text: "x", BBox: model.Rect{MinX: 10, MaxX: 5, MaxY: 10}})
	_, err = NewPageArea(page, nil)
	assert.ErrorIs(t, err, model.ErrInvalidGeometry)
}

func TestNewArea(t *testing.T) {
	page := twoColumnPage(1000)
	stats := ComputeDocumentStats(docOf(page))

	area := regionArea(page, model.Rect{MaxX: 400, MaxY: 1000}, stats)

	assert.False(t, area.IsTextAreaOfPage())
	assert.Equal(t, 800, area.Len())
	assert.InDelta(t, 5.0, area.Statistics().MostCommonWidth, 1e-9)
	assert.Same(t, stats, area.Document())
}

func TestNewArea_Errors(t *testing.T) {
	tests := []struct {
		name     string
		rect     model.Rect
		elements []model.Element
	}{
		{"inverted rect", model.Rect{MinX: 10, MaxX: 0, MaxY: 10}, nil},
		{"NaN rect", model.Rect{MinX: math.NaN(), MaxX: 10, MaxY: 10}, nil},
		{"nil element", model.Rect{MaxX: 10, MaxY: 10}, []model.Element{nil}},
		{"infinite element", model.Rect{MaxX: 10, MaxY: 10}, []model.Element{
			&model.Shape{BBox: model.Rect{MaxX: math.Inf(1), MaxY: 1}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewArea(tt.rect, tt.elements, nil)
			assert.ErrorIs(t, err, model.ErrInvalidGeometry)
		})
	}
}

func TestNewArea_DefaultContext(t *testing.T) {
	area, err := NewArea(model.Rect{MaxX: 10, MaxY: 10}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, area.Len())
	assert.Equal(t, model.Rect{MaxX: 10, MaxY: 10}, area.Page().BBox)
	assert.Zero(t, area.Document().LinePitch)
}

func TestArea_ElementsOverlapping_ExtractionOrder(t *testing.T) {
	elems := []model.Element{
		makeChar("c", 2, 20, 0, 5, 10),
		&model.Figure{BBox: model.Rect{MinX: 0, MinY: 20, MaxX: 30, MaxY: 30}, Order: 1},
		makeChar("a", 0, 0, 0, 5, 10),
	}
	area, err := NewArea(model.Rect{MaxX: 100, MaxY: 100}, elems, nil)
	require.NoError(t, err)

	got := area.ElementsOverlapping(model.Rect{MaxX: 100, MaxY: 100})
	require.Len(t, got, 3)
	for i, e := range got {
		assert.Equal(t, i, e.ExtractionOrder())
	}

	chars := area.CharactersOverlapping(model.Rect{MaxX: 100, MaxY: 100})
	require.Len(t, chars, 2)
	assert.Equal(t, "a", chars[0].Text)
	assert.Equal(t, "c", chars[1].Text)
}

func TestArea_Overlapping_TouchingEdges(t *testing.T) {
	area, err := NewArea(model.Rect{MaxX: 100, MaxY: 100},
		[]model.Element{makeChar("a", 0, 10, 10, 5, 10)}, nil)
	require.NoError(t, err)

	tests := []struct {
		name string
		rect model.Rect
		want int
	}{
		{"touching right edge", model.Rect{MinX: 15, MaxX: 20, MaxY: 100}, 1},
		{"touching left edge", model.Rect{MinX: 5, MaxX: 10, MaxY: 100}, 1},
		{"just apart", model.Rect{MinX: 15.01, MaxX: 20, MaxY: 100}, 0},
		{"above", model.Rect{MinY: 21, MaxX: 100, MaxY: 30}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, area.ElementsOverlapping(tt.rect), tt.want)
			assert.Equal(t, tt.want > 0, area.anyCharacterOverlapping(tt.rect, nil))
		})
	}
}

func TestArea_AnyCharacterOverlapping_Skip(t *testing.T) {
	area, err := NewArea(model.Rect{MaxX: 100, MaxY: 100}, []model.Element{
		makeChar("g", 0, 10, 10, 5, 10),
		&model.Figure{BBox: model.Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}, Order: 1},
	}, nil)
	require.NoError(t, err)

	lane := model.Rect{MinY: 0, MaxX: 100, MaxY: 12}
	assert.True(t, area.anyCharacterOverlapping(lane, nil))
	assert.False(t, area.anyCharacterOverlapping(lane, func(c *model.Character) bool {
		return c.IsDescenderLetter()
	}))
}

func TestArea_BesideLane(t *testing.T) {
	left := makeChar("l", 0, 0, 40, 5, 10)
	touching := makeChar("t", 1, 45, 40, 5, 10)
	right := makeChar("r", 2, 80, 40, 5, 10)
	area, err := NewArea(model.Rect{MaxX: 100, MaxY: 100}, []model.Element{left, touching, right}, nil)
	require.NoError(t, err)

	before, after := area.besideLane(Vertical, model.Rect{MinX: 50, MaxX: 60, MaxY: 100})
	assert.Equal(t, []model.Element{left}, before)
	assert.Equal(t, []model.Element{right}, after)

	upper := makeChar("u", 3, 0, 80, 5, 10)
	lower := makeChar("d", 4, 0, 10, 5, 10)
	area, err = NewArea(model.Rect{MaxX: 100, MaxY: 100}, []model.Element{upper, lower}, nil)
	require.NoError(t, err)

	before, after = area.besideLane(Horizontal, model.Rect{MinY: 40, MaxX: 100, MaxY: 60})
	assert.Equal(t, []model.Element{upper}, before)
	assert.Equal(t, []model.Element{lower}, after)
}

func TestArea_Split(t *testing.T) {
	elems := []model.Element{
		makeChar("a", 0, 10, 80, 5, 10),
		makeChar("b", 1, 70, 80, 5, 10),
		makeChar("c", 2, 10, 10, 5, 10),
		// Straddles x=50 with its center at 52.
		&model.Shape{BBox: model.Rect{MinX: 44, MinY: 10, MaxX: 60, MaxY: 20}, Order: 3},
	}
	area, err := NewArea(model.Rect{MaxX: 100, MaxY: 100}, elems, nil)
	require.NoError(t, err)

	t.Run("vertical", func(t *testing.T) {
		left, right := area.split(Vertical, 50)

		assert.Equal(t, model.Rect{MaxX: 50, MaxY: 100}, left.Rect())
		assert.Equal(t, model.Rect{MinX: 50, MaxX: 100, MaxY: 100}, right.Rect())
		assert.Equal(t, 2, left.Len())
		assert.Equal(t, 2, right.Len())
		assert.Same(t, area.Page(), left.Page())
	})

	t.Run("horizontal", func(t *testing.T) {
		upper, lower := area.split(Horizontal, 50)

		assert.Equal(t, model.Rect{MinY: 50, MaxX: 100, MaxY: 100}, upper.Rect())
		assert.Equal(t, model.Rect{MaxX: 100, MaxY: 50}, lower.Rect())
		assert.Equal(t, 2, upper.Len())
		assert.Equal(t, 2, lower.Len())
		assert.Equal(t, "a", upper.Characters()[0].Text)
	})

	t.Run("separates", func(t *testing.T) {
		assert.True(t, area.separates(Vertical, 50))
		assert.False(t, area.separates(Vertical, 5))
		assert.False(t, area.separates(Horizontal, 99))
	})
}

func TestArea_CharactersWithOrder(t *testing.T) {
	area, err := NewArea(model.Rect{MaxX: 100, MaxY: 100}, []model.Element{
		makeChar("a", 4, 0, 0, 5, 10),
		makeChar("b", 4, 5, 0, 5, 10),
		makeChar("c", 5, 10, 0, 5, 10),
	}, nil)
	require.NoError(t, err)

	assert.Len(t, area.charactersWithOrder(4), 2)
	assert.Len(t, area.charactersWithOrder(5), 1)
	assert.Empty(t, area.charactersWithOrder(6))
}
