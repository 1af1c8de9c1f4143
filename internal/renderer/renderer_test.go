package renderer

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purplefit/purplefit-v2/backend/internal/models"
)

type staticAssets struct {
	assets Assets
}

func (s staticAssets) FetchAssets(ctx context.Context) Assets { return s.assets }

func planWithWeeks(n int) models.MealPlan {
	plan := models.MealPlan{
		ID:         "p1",
		Title:      "Client Plan",
		ClientName: "Jane Doe",
		Category:   models.PlanCategoryNormal,
	}
	for i := 0; i < n; i++ {
		plan.Weeks = append(plan.Weeks, models.MealPlanWeek{
			ID:         "w" + string(rune('1'+i)),
			WeekNumber: i + 1,
			Meals:      []models.MealPlanMeal{},
		})
	}
	return plan
}

func TestRenderPageCount(t *testing.T) {
	r := New(nil)
	for _, weeks := range []int{0, 1, 3} {
		result, err := r.Render(context.Background(), planWithWeeks(weeks), nil)
		require.NoError(t, err)
		// Cover + one per week + guidelines.
		assert.Equal(t, weeks+2, result.Pages, "weeks=%d", weeks)
		assert.NotEmpty(t, result.PDF)
		assert.Equal(t, "%PDF", string(result.PDF[:4]))
	}
}

func TestRenderFilename(t *testing.T) {
	r := New(nil)
	result, err := r.Render(context.Background(), planWithWeeks(1), nil)
	require.NoError(t, err)
	assert.Equal(t, "Client_Plan.pdf", result.Filename)
}

func TestRenderWithMealsAndDanglingRefs(t *testing.T) {
	plan := planWithWeeks(1)
	plan.Weeks[0].Meals = []models.MealPlanMeal{
		{
			ID:              "m1",
			DayOfWeek:       1,
			MealType:        models.MealTypeBreakfast,
			FoodEntryIDs:    []string{"f-known", "f-gone"},
			CustomMealTexts: []string{"Extra tea"},
		},
	}
	foods := []models.FoodEntry{{ID: "f-known", Name: "Oatmeal", MealType: models.MealTypeBreakfast}}

	result, err := New(nil).Render(context.Background(), plan, foods)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Pages)
}

func TestRenderIgnoresBadAssets(t *testing.T) {
	fetcher := staticAssets{assets: Assets{
		Cover: []byte("definitely not an image"),
		Logo:  []byte{0x00, 0x01},
	}}

	result, err := New(fetcher).Render(context.Background(), planWithWeeks(1), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Pages)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "My_Plan_2025_.pdf", FileName("My Plan 2025!"))
	assert.Equal(t, ".pdf", FileName(""))
	assert.Equal(t, "Caf__Plan.pdf", FileName("Café Plan"))
}

func TestMealLines(t *testing.T) {
	catalog := map[string]models.FoodEntry{
		"f-1": {ID: "f-1", Name: "Oatmeal"},
	}
	meal := &models.MealPlanMeal{
		FoodEntryIDs:    []string{"f-1", "f-missing"},
		CustomMealTexts: []string{"Herbal tea"},
	}

	lines := mealLines(meal, catalog)
	assert.Equal(t, []string{"Oatmeal", "Unknown Meal", "- Herbal tea"}, lines)
}

// guidelinesDoc draws a guidelines section into an uncompressed document so
// tests can inspect the raw content stream.
func guidelinesDoc(t *testing.T, items []guidelineItem) (*gofpdf.Fpdf, []byte) {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetCompression(false)
	doc.SetAutoPageBreak(false, 0)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()
	pageHeader(doc, tr, false, "Guidelines")
	guidelinesPages(doc, tr, items)

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return doc, buf.Bytes()
}

func TestGuidelinesBulletUsesWinAnsiEncoding(t *testing.T) {
	_, out := guidelinesDoc(t, guidelines)

	// The core fonts are cp1252: the bullet must land as the single 0x95
	// byte, never as the raw UTF-8 sequence.
	assert.False(t, bytes.Contains(out, []byte{0xE2, 0x80, 0xA2}),
		"raw UTF-8 bullet found in content stream")
	assert.True(t, bytes.Contains(out, []byte{0x95}))
}

func TestGuidelinesOverflowContinuationPage(t *testing.T) {
	items := []guidelineItem{{guidelineHeading, "POINTS TO NOTE:"}}
	for i := 0; i < 25; i++ {
		items = append(items, guidelineItem{guidelinePoint, fmt.Sprintf("Drink water, point %d.", i)})
	}

	doc, out := guidelinesDoc(t, items)
	assert.Equal(t, 2, doc.PageCount(), "overflow starts a continuation page")
	assert.Contains(t, string(out), "Guidelines (cont.)")
	// Both headers use the text-fallback brand mark: once on the first page,
	// once on the continuation.
	assert.Equal(t, 2, strings.Count(string(out), "PURPLE FIT"))
}

func TestRenderPageCountWithGuidelinesOverflow(t *testing.T) {
	orig := guidelines
	defer func() { guidelines = orig }()
	long := []guidelineItem{{guidelineHeading, "POINTS TO NOTE:"}}
	for i := 0; i < 25; i++ {
		long = append(long, guidelineItem{guidelinePoint, fmt.Sprintf("Drink water, point %d.", i)})
	}
	guidelines = long

	result, err := New(nil).Render(context.Background(), planWithWeeks(1), nil)
	require.NoError(t, err)
	// Cover + week + guidelines + one continuation.
	assert.Equal(t, 4, result.Pages)
}

func TestWeekPageNonASCIIEncoding(t *testing.T) {
	plan := planWithWeeks(1)
	plan.Title = "Café Reset"
	plan.ClientName = "Zoë"
	plan.Weeks[0].Meals = []models.MealPlanMeal{{
		ID:              "m1",
		DayOfWeek:       1,
		MealType:        models.MealTypeLunch,
		CustomMealTexts: []string{"Crème fraîche bowl"},
	}}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetCompression(false)
	doc.SetAutoPageBreak(false, 0)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()
	weekPage(doc, tr, &plan, &plan.Weeks[0], nil)

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	out := buf.Bytes()

	// é must be the single cp1252 byte 0xE9, not the raw UTF-8 pair.
	assert.True(t, bytes.Contains(out, []byte{0xE9}))
	assert.False(t, bytes.Contains(out, []byte{0xC3, 0xA9}),
		"raw UTF-8 for é found in content stream")
}

func TestImageType(t *testing.T) {
	assert.Equal(t, "JPG", imageType([]byte{0xFF, 0xD8, 0xFF, 0xE0}))
	assert.Equal(t, "PNG", imageType([]byte("\x89PNG\r\n")))
	assert.Equal(t, "GIF", imageType([]byte("GIF89a....")))
	assert.Equal(t, "", imageType([]byte("plain text")))
	assert.Equal(t, "", imageType(nil))
}
