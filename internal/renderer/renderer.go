package renderer

import (
	"bytes"
	"context"
	"fmt"
	"regexp"

	"github.com/jung-kurt/gofpdf"

	"github.com/purplefit/purplefit-v2/backend/internal/models"
)

// Layout geometry, in millimeters on A4. Column and row sizes are fixed, not
// content-driven: overflowing text wraps within the cell width but does not
// grow the row.
const (
	pageMargin   = 20.0
	dayColWidth  = 35.0
	headerHeight = 15.0
	rowHeight    = 35.0
	textPadding  = 3.0

	mealFontSize   = 9.0
	mealLineHeight = 4.0
)

// unknownFoodLabel is rendered for food ids that no longer resolve against
// the catalog. Dangling references are expected, not an error.
const unknownFoodLabel = "Unknown Meal"

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var mealColumns = []struct {
	Type  models.MealType
	Label string
}{
	{models.MealTypeBreakfast, "Breakfast"},
	{models.MealTypeLunch, "Lunch"},
	{models.MealTypeDinner, "Dinner"},
}

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Result is a finished document.
type Result struct {
	PDF      []byte
	Filename string
	Pages    int
}

// Renderer turns a meal plan and the food catalog into a paginated PDF:
// cover, one page per week, guidelines. Pure apart from the best-effort
// asset fetch; the same inputs produce the same document.
type Renderer struct {
	assets AssetFetcher
}

// New creates a Renderer. fetcher may be nil, in which case every page uses
// the drawn fallbacks.
func New(fetcher AssetFetcher) *Renderer {
	return &Renderer{assets: fetcher}
}

// Render produces the document for the given plan against the given catalog.
func (r *Renderer) Render(ctx context.Context, plan models.MealPlan, foods []models.FoodEntry) (*Result, error) {
	var assets Assets
	if r.assets != nil {
		assets = r.assets.FetchAssets(ctx)
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	// The core fonts are cp1252-encoded; every user-visible string drawn on
	// a page goes through tr or multibyte runes end up as mojibake.
	tr := doc.UnicodeTranslatorFromDescriptor("")
	coverOK := registerImage(doc, "cover", assets.Cover)
	logoOK := registerImage(doc, "logo", assets.Logo)

	coverPage(doc, coverOK)

	catalog := make(map[string]models.FoodEntry, len(foods))
	for _, entry := range foods {
		catalog[entry.ID] = entry
	}
	for i := range plan.Weeks {
		doc.AddPage()
		pageHeader(doc, tr, logoOK, fmt.Sprintf("Week %d", i+1))
		weekPage(doc, tr, &plan, &plan.Weeks[i], catalog)
	}

	doc.AddPage()
	pageHeader(doc, tr, logoOK, "Guidelines")
	guidelinesPages(doc, tr, guidelines)

	numberPages(doc)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("generating document: %w", err)
	}
	return &Result{
		PDF:      buf.Bytes(),
		Filename: FileName(plan.Title),
		Pages:    doc.PageCount(),
	}, nil
}

// FileName derives the download name from the plan title, stripping anything
// outside [a-zA-Z0-9].
func FileName(title string) string {
	return nonAlnum.ReplaceAllString(title, "_") + ".pdf"
}

// registerImage makes the image data available under the given name and
// reports success. Unusable data is absorbed; the caller falls back to the
// drawn branch.
func registerImage(doc *gofpdf.Fpdf, name string, data []byte) bool {
	kind := imageType(data)
	if kind == "" {
		return false
	}
	opts := gofpdf.ImageOptions{ImageType: kind}
	doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if doc.Err() {
		doc.ClearError()
		return false
	}
	return true
}

func imageType(data []byte) string {
	switch {
	case len(data) > 3 && data[0] == 0xFF && data[1] == 0xD8:
		return "JPG"
	case bytes.HasPrefix(data, []byte("\x89PNG")):
		return "PNG"
	case bytes.HasPrefix(data, []byte("GIF87a")) || bytes.HasPrefix(data, []byte("GIF89a")):
		return "GIF"
	default:
		return ""
	}
}

// coverPage draws the full-bleed cover image, or a brand-color panel with
// centered title text when the image is unavailable.
func coverPage(doc *gofpdf.Fpdf, haveImage bool) {
	doc.AddPage()
	pageW, pageH := doc.GetPageSize()

	if haveImage {
		doc.ImageOptions("cover", 0, 0, pageW, pageH, false, gofpdf.ImageOptions{}, 0, "")
		if !doc.Err() {
			return
		}
		doc.ClearError()
	}

	doc.SetFillColor(147, 51, 234)
	doc.Rect(0, 0, pageW, pageH, "F")
	doc.SetFont("Helvetica", "B", 36)
	doc.SetTextColor(255, 255, 255)
	centeredText(doc, "PURPLE FIT", pageW/2, pageH/2-10)
	doc.SetFont("Helvetica", "", 22)
	centeredText(doc, "Meal Plan", pageW/2, pageH/2+10)
}

// pageHeader draws the shared header: logo (or text fallback) top-left and
// the page title centered.
func pageHeader(doc *gofpdf.Fpdf, tr func(string) string, withLogo bool, title string) {
	pageW, _ := doc.GetPageSize()

	if withLogo {
		doc.ImageOptions("logo", pageMargin, 8, 25, 12, false, gofpdf.ImageOptions{}, 0, "")
		if doc.Err() {
			doc.ClearError()
			withLogo = false
		}
	}
	if !withLogo {
		doc.SetFont("Helvetica", "B", 10)
		doc.SetTextColor(147, 51, 234)
		doc.Text(pageMargin, 15, "PURPLE FIT")
	}

	doc.SetFont("Helvetica", "B", 12)
	doc.SetTextColor(31, 41, 55)
	centeredText(doc, tr(title), pageW/2, 15)
}

// weekPage draws the plan title, client line and the fixed 7x3 grid for one
// week.
func weekPage(doc *gofpdf.Fpdf, tr func(string) string, plan *models.MealPlan, week *models.MealPlanWeek, catalog map[string]models.FoodEntry) {
	pageW, _ := doc.GetPageSize()

	y := 35.0
	doc.SetFont("Helvetica", "B", 22)
	doc.SetTextColor(31, 41, 55)
	doc.Text(pageMargin, y, tr(plan.Title))
	y += 8
	if plan.ClientName != "" {
		doc.SetFont("Helvetica", "", 14)
		doc.SetTextColor(75, 85, 99)
		doc.Text(pageMargin, y, tr("Client: "+plan.ClientName))
	}
	y += 15

	startY := y
	tableW := pageW - 2*pageMargin
	mealColW := (tableW - dayColWidth) / 3

	// Header band.
	doc.SetFillColor(147, 51, 234)
	doc.Rect(pageMargin, startY, tableW, headerHeight, "F")
	doc.SetFont("Helvetica", "B", 10)
	doc.SetTextColor(255, 255, 255)
	centeredText(doc, "Day", pageMargin+dayColWidth/2, startY+headerHeight/2+3)
	for i, col := range mealColumns {
		x := pageMargin + dayColWidth + float64(i)*mealColW + mealColW/2
		centeredText(doc, col.Label, x, startY+headerHeight/2+3)
	}

	// Day rows and meal cells.
	for dayIdx, day := range weekdays {
		rowY := startY + headerHeight + float64(dayIdx)*rowHeight
		doc.SetFont("Helvetica", "B", 10)
		doc.SetTextColor(31, 41, 55)
		doc.Text(pageMargin+textPadding, rowY+rowHeight/2+3, day)

		doc.SetFont("Helvetica", "", mealFontSize)
		for colIdx, col := range mealColumns {
			meal := week.MealFor(dayIdx+1, col.Type)
			if meal == nil {
				continue
			}
			x := pageMargin + dayColWidth + float64(colIdx)*mealColW
			textY := rowY + 7
			for _, line := range mealLines(meal, catalog) {
				for _, wrapped := range doc.SplitText(tr(line), mealColW-2*textPadding) {
					doc.Text(x+textPadding, textY, wrapped)
					textY += mealLineHeight
				}
			}
		}
	}

	// Grid lines.
	doc.SetDrawColor(204, 204, 204)
	doc.SetLineWidth(0.2)
	gridBottom := startY + headerHeight + float64(len(weekdays))*rowHeight
	for i := 0; i <= len(weekdays); i++ {
		lineY := startY + headerHeight + float64(i)*rowHeight
		doc.Line(pageMargin, lineY, pageMargin+tableW, lineY)
	}
	doc.Line(pageMargin, startY, pageMargin, gridBottom)
	doc.Line(pageMargin+dayColWidth, startY, pageMargin+dayColWidth, gridBottom)
	for i := 0; i <= len(mealColumns); i++ {
		x := pageMargin + dayColWidth + float64(i)*mealColW
		doc.Line(x, startY, x, gridBottom)
	}
}

// mealLines resolves a slot's content to display lines: one per referenced
// food (falling back for dangling ids), then one per custom text, prefixed
// to mark it as free-form.
func mealLines(meal *models.MealPlanMeal, catalog map[string]models.FoodEntry) []string {
	lines := make([]string, 0, len(meal.FoodEntryIDs)+len(meal.CustomMealTexts))
	for _, id := range meal.FoodEntryIDs {
		if entry, ok := catalog[id]; ok {
			lines = append(lines, entry.Name)
		} else {
			lines = append(lines, unknownFoodLabel)
		}
	}
	for _, text := range meal.CustomMealTexts {
		lines = append(lines, "- "+text)
	}
	return lines
}

// guidelinesPages flows the guideline items down the page, starting a
// continuation page on overflow. The continuation header always uses the
// text fallback; the logo is not threaded across the break. Production
// passes the package-level guidelines list.
func guidelinesPages(doc *gofpdf.Fpdf, tr func(string) string, items []guidelineItem) {
	pageW, pageH := doc.GetPageSize()
	contentW := pageW - 2*pageMargin

	doc.SetFont("Helvetica", "B", 22)
	doc.SetTextColor(31, 41, 55)
	doc.Text(pageMargin, 35, "Useful Guidelines")

	y := 55.0
	for _, item := range items {
		if y > pageH-40 {
			doc.AddPage()
			pageHeader(doc, tr, false, "Guidelines (cont.)")
			y = 35
		}
		if item.kind == guidelineHeading {
			doc.SetFont("Helvetica", "B", 14)
			doc.SetTextColor(147, 51, 234)
			doc.Text(pageMargin, y, tr(item.text))
			y += 10
			continue
		}
		doc.SetFont("Helvetica", "", 10)
		doc.SetTextColor(31, 41, 55)
		split := doc.SplitText(tr(item.text), contentW-5)
		doc.Text(pageMargin, y, tr("•"))
		for i, line := range split {
			doc.Text(pageMargin+5, y+float64(i)*5, line)
		}
		y += float64(len(split))*5 + 5
	}
}

// numberPages labels every page but the cover, counted after the cover.
func numberPages(doc *gofpdf.Fpdf) {
	pageW, pageH := doc.GetPageSize()
	total := doc.PageCount()
	for i := 2; i <= total; i++ {
		doc.SetPage(i)
		doc.SetFont("Helvetica", "", 8)
		doc.SetTextColor(107, 114, 128)
		label := fmt.Sprintf("Page %d of %d", i-1, total-1)
		doc.Text(pageW-pageMargin-doc.GetStringWidth(label), pageH-10, label)
	}
}

func centeredText(doc *gofpdf.Fpdf, s string, x, y float64) {
	doc.Text(x-doc.GetStringWidth(s)/2, y, s)
}
