package stylist

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meera/wardrobe-stylist/internal/closet"
	"github.com/meera/wardrobe-stylist/internal/llm"
	"github.com/meera/wardrobe-stylist/internal/occasions"
	"github.com/meera/wardrobe-stylist/internal/weather"
)

type fakeWardrobe struct {
	items []closet.Item
	err   error
}

func (f *fakeWardrobe) ItemsByProfile(context.Context, uuid.UUID) ([]closet.Item, error) {
	return f.items, f.err
}

type fakeWeather struct {
	weather *weather.Weather
	err     error
}

func (f *fakeWeather) Current(context.Context, string) (*weather.Weather, error) {
	return f.weather, f.err
}

type fakeGenerator struct {
	reply      string
	err        error
	lastSystem string
	lastUser   string
}

func (f *fakeGenerator) GenerateChat(_ context.Context, system, user string, _ llm.ModelTier) (string, error) {
	f.lastSystem = system
	f.lastUser = user
	return f.reply, f.err
}

func testRules(t *testing.T) *occasions.Table {
	t.Helper()
	table, err := occasions.Load()
	require.NoError(t, err)
	return table
}

func testRequest() Request {
	return Request{
		ProfileID:   uuid.New(),
		ProfileName: "Meera",
		Occasion:    "office meeting",
		City:        "Chennai",
	}
}

func TestSuggest_FullFlow(t *testing.T) {
	wardrobe := &fakeWardrobe{items: []closet.Item{
		{Name: "white shirt", Category: "Shirt"},
		{Name: "black trousers", Category: "Pants"},
		{Name: "loafers", Category: "Shoes"},
	}}
	wx := &fakeWeather{weather: &weather.Weather{City: "Chennai", Temp: 34, Description: "Clear sky"}}
	gen := &fakeGenerator{reply: "Overall Outfit Suggestion:\nClean lines. Office ready.\n\nTop: white shirt\nBottom: black trousers\nShoes: loafers\nAccessory: Not available in wardrobe\n"}

	s := New(wardrobe, wx, gen, testRules(t), WithShuffle(closet.NoShuffle))

	res, err := s.Suggest(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "office", res.MatchedOccasion)
	assert.Equal(t, "white shirt", res.Outfit.Top)
	assert.Equal(t, "black trousers", res.Outfit.Bottom)
	assert.Equal(t, wx.weather, res.Weather)
	assert.Len(t, res.Items, 3)
	assert.False(t, res.WardrobeEmpty)

	assert.Contains(t, gen.lastSystem, "You are a Fashion Stylist for Meera.")
	assert.Contains(t, gen.lastSystem, "CURRENT WEATHER in Chennai: 34°C, Clear sky")
	assert.Equal(t, "Suggest an outfit for: office meeting", gen.lastUser)
}

func TestSuggest_EmptyWardrobeSkipsGenerator(t *testing.T) {
	gen := &fakeGenerator{reply: "should not be called"}
	s := New(&fakeWardrobe{}, &fakeWeather{}, gen, testRules(t))

	res, err := s.Suggest(context.Background(), testRequest())
	require.NoError(t, err)

	assert.True(t, res.WardrobeEmpty)
	assert.Equal(t, "Meera's wardrobe is empty! Add items first.", res.Suggestion)
	assert.Empty(t, gen.lastSystem)
}

func TestSuggest_WeatherFailureIsTolerated(t *testing.T) {
	wardrobe := &fakeWardrobe{items: []closet.Item{{Name: "tee", Category: "T-Shirt"}}}
	wx := &fakeWeather{err: errors.New("geocoding down")}
	gen := &fakeGenerator{reply: "Top: tee\nBottom: jeans\n"}

	s := New(wardrobe, wx, gen, testRules(t))

	res, err := s.Suggest(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Nil(t, res.Weather)
	assert.NotContains(t, gen.lastSystem, "CURRENT WEATHER")
}

func TestSuggest_WardrobeFailureFailsRequest(t *testing.T) {
	s := New(&fakeWardrobe{err: errors.New("db down")}, &fakeWeather{}, &fakeGenerator{}, testRules(t))

	_, err := s.Suggest(context.Background(), testRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load wardrobe")
}

func TestSuggest_GeneratorFailureFailsRequest(t *testing.T) {
	wardrobe := &fakeWardrobe{items: []closet.Item{{Name: "tee", Category: "T-Shirt"}}}
	s := New(wardrobe, &fakeWeather{}, &fakeGenerator{err: errors.New("quota exceeded")}, testRules(t))

	_, err := s.Suggest(context.Background(), testRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate styling suggestion")
}

func TestResult_ResponseCarriesWardrobeItems(t *testing.T) {
	wardrobe := &fakeWardrobe{items: []closet.Item{
		{Name: "white shirt", Category: "Shirt"},
		{Name: "black trousers", Category: "Pants"},
	}}
	gen := &fakeGenerator{reply: "Top: white shirt\nBottom: black trousers\n"}

	s := New(wardrobe, &fakeWeather{}, gen, testRules(t))

	res, err := s.Suggest(context.Background(), testRequest())
	require.NoError(t, err)

	body, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"items":[{"name":"white shirt","category":"Shirt"},{"name":"black trousers","category":"Pants"}]`)
}

func TestResult_EmptyWardrobeResponseOmitsItems(t *testing.T) {
	s := New(&fakeWardrobe{}, &fakeWeather{}, &fakeGenerator{}, testRules(t))

	res, err := s.Suggest(context.Background(), testRequest())
	require.NoError(t, err)

	body, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(body), `"items"`)
}

func TestSuggest_RepairsGeneratorReply(t *testing.T) {
	wardrobe := &fakeWardrobe{items: []closet.Item{{Name: "red saree", Category: "Saree"}}}
	gen := &fakeGenerator{reply: "Top: None needed\nBottom: red saree\n"}

	s := New(wardrobe, &fakeWeather{}, gen, testRules(t))

	res, err := s.Suggest(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "red saree", res.Outfit.Top)
	assert.Equal(t, NoneNeeded, res.Outfit.Bottom)
	assert.Contains(t, res.Suggestion, "Top: red saree")
}
