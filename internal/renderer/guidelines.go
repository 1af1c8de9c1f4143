package renderer

type guidelineKind int

const (
	guidelineHeading guidelineKind = iota
	guidelinePoint
)

type guidelineItem struct {
	kind guidelineKind
	text string
}

// guidelines is the fixed content of the final document page.
var guidelines = []guidelineItem{
	{guidelineHeading, "POINTS TO NOTE:"},
	{guidelinePoint, "This meal plan is for guidance purposes and not intended to manage any medical conditions."},
	{guidelinePoint, "The celery / ginger / cucumber combo juice should be drank first thing in the morning once you wake up."},
	{guidelinePoint, "If you have stomach ulcer and can't tolerate Ginger, use mint leaves instead."},
	{guidelinePoint, "Food preferences should be considered when choosing your protein and carbs sources, feel free to swap and interchange where necessary."},
	{guidelinePoint, "The major aim of meal plans is to encourage you to eat Whole Foods as often as you can till it becomes a lifestyle so this is not set on stone as a meal plan is meant to be enjoyed and not endured."},
	{guidelinePoint, "If you fall off one day or 2, I understand but please try to get back on track as quickly as possible."},
	{guidelinePoint, "If you can stick to at least 80% of this plan, I am certain you will send me a positive testimonial."},
	{guidelinePoint, "Aside your morning green juice, Eat all other fruits whole to enjoy the benefits of the Fibre it contains. Leave smoothies for now."},
	{guidelinePoint, "Water detoxifies the system, rejuvenates your skin and hydrates; ensure you drink all the cups of water or if you can't keep count, get a 2 liter bottle and aim to finish it everyday and always take a bottle of water along as you go out."},
	{guidelinePoint, "Depending on your daily schedule, if you are one to exercise first thing in the mornings, drink your green juice before workout and come back for breakfast before 8:30am."},
	{guidelinePoint, "All these won't be complete if you don't sleep properly for at least 7 hrs every night and cut down on stress because 60% of weight gain is triggered by high cortisol levels."},
}
