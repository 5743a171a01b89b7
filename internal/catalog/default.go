package catalog

// Default returns the built-in fallacy catalog: the eight detectable kinds
// plus the extended reference entries that are only used as prompt context.
func Default() *Catalog {
	return New(defaultKinds, defaultDetails)
}

var defaultKinds = []Kind{
	{ID: "appeal_to_authority", Label: "Appeal to Authority"},
	{ID: "appeal_to_majority", Label: "Appeal to Majority"},
	{ID: "appeal_to_nature", Label: "Appeal to Nature"},
	{ID: "appeal_to_tradition", Label: "Appeal to Tradition"},
	{ID: "appeal_to_worse", Label: "Appeal to Worse Problems"},
	{ID: "false_dilemma", Label: "False Dilemma"},
	{ID: "hasty_generalization", Label: "Hasty Generalization"},
	{ID: "slippery_slope", Label: "Slippery Slope"},
}

// referenceOrder fixes the rendering order of the reference table
var referenceOrder = []string{
	"Appeal to Authority",
	"Appeal to Majority",
	"Appeal to Nature",
	"Appeal to Tradition",
	"Appeal to Worse Problems",
	"False Dilemma",
	"Hasty Generalization",
	"Slippery Slope",
	"Ad Hominem",
	"Straw Man",
	"Red Herring",
	"Tu Quoque",
	"Circular Reasoning",
	"False Analogy",
	"Post Hoc",
	"Correlation vs Causation",
	"Appeal to Emotion",
	"Appeal to Ignorance",
	"Sunk Cost",
}

var defaultDetails = map[string]Detail{
	"Appeal to Authority": {
		Definition: "Using \"an expert or institution says so\" to prove a claim, while ignoring whether the authority is reliable or whether the view has been challenged or refuted.",
		Examples: []string{
			"This supplement must be effective - after all, a renowned academician endorsed it!",
		},
	},
	"Appeal to Majority": {
		Definition: "Treating \"everyone does or thinks so\" as evidence, wrongly equating popularity with correctness.",
		Examples: []string{
			"A miracle-cure video with tens of millions of views can't be fake, right?",
			"Everyone in the class chose C++; why would you still learn Python?",
		},
	},
	"Appeal to Nature": {
		Definition: "Assuming that anything natural is inherently better than artificial or technological products; using \"natural\" as a value label.",
		Examples: []string{
			"This honey face mask is 100% natural, so it's much safer than chemical skincare.",
		},
	},
	"Appeal to Tradition": {
		Definition: "Using \"we've always done it this way\" as the argument, ignoring changes in context or flaws in the tradition itself.",
		Examples: []string{
			"You have to buy a house to get married - our elders all did it that way!",
		},
	},
	"Appeal to Worse Problems": {
		Definition: "When A is criticized, diverting attention by saying B is worse, as if a worse issue justifies ignoring A.",
		Examples: []string{
			"You say air pollution is severe? Some people don't even have food - stop whining!",
		},
	},
	"False Dilemma": {
		Definition: "Forcing a complex issue into only two mutually exclusive options while excluding other possibilities.",
		Examples: []string{
			"If you support our brand, you love the planet; if you don't, you're harming the environment.",
		},
	},
	"Hasty Generalization": {
		Definition: "Drawing a general conclusion from a small or unrepresentative sample.",
		Examples: []string{
			"I met two awful taxi drivers - so all taxi drivers in this city have poor manners!",
		},
	},
	"Slippery Slope": {
		Definition: "Claiming that once a measure is implemented it will inevitably trigger a chain of worse consequences, without justifying the intermediate links.",
		Examples: []string{
			"If same-sex marriage is recognized, traditional marriage will collapse and social order will fall apart.",
		},
	},

	// Reference-only entries below: used as prompt context so the model can
	// tell near-miss patterns apart, but not detectable kinds themselves.
	"Ad Hominem": {
		Definition: "Dismissing an argument by attacking the speaker's character, background, or motives rather than engaging with the argument itself.",
		Examples: []string{
			"Don't take his investment advice - he's gone bankrupt before.",
		},
	},
	"Straw Man": {
		Definition: "Deliberately misrepresenting or exaggerating an opponent's position, then refuting that distorted version instead of the actual view.",
		Examples: []string{
			"You want to reduce military spending? So you want the country to have no defense at all?",
		},
	},
	"Red Herring": {
		Definition: "Introducing a topic that seems relevant but is actually off-point, diverting the discussion away from the core issue.",
		Examples: []string{
			"We're discussing unfair pay. The company's charitable donations aren't the main issue.",
		},
	},
	"Tu Quoque": {
		Definition: "Deflecting by accusing the other side of hypocrisy instead of addressing the argument; a variant of ad hominem.",
		Examples: []string{
			"The teacher says not to be late; a student replies, 'You were late last time, too.'",
		},
	},
	"Circular Reasoning": {
		Definition: "Presupposing the conclusion in the premises - arguing X is true because X is true.",
		Examples: []string{
			"He's trustworthy because everything he says is true.",
			"This phone is the best because there's no better phone on the market.",
		},
	},
	"False Analogy": {
		Definition: "Basing a conclusion on an analogy between things that are not similar in the key respects that matter.",
		Examples: []string{
			"Humans are like computers and need a reboot, so you must sleep 8 hours to run properly.",
		},
	},
	"Post Hoc": {
		Definition: "Concluding that A caused B simply because A happened before B, ignoring other possible factors.",
		Examples: []string{
			"After I wore these sneakers, our team won - they must be lucky shoes.",
			"Cancer rates rose after the power plant was built, so the plant must be the cause.",
		},
	},
	"Correlation vs Causation": {
		Definition: "Inferring causation from correlation; the relationship could be due to a common cause or coincidence.",
		Examples: []string{
			"Ice cream sales and drowning incidents both rise, so eating ice cream causes drowning.",
		},
	},
	"Appeal to Emotion": {
		Definition: "Substituting emotional triggers such as fear or pity for rational argument to sway the conclusion.",
		Examples: []string{
			"If you don't donate, these poor children will have nothing to eat tonight.",
		},
	},
	"Appeal to Ignorance": {
		Definition: "Arguing that a claim is true or false because it has not been proven otherwise - treating lack of evidence as evidence.",
		Examples: []string{
			"No one has proved that aliens don't exist, so they must exist.",
		},
	},
	"Sunk Cost": {
		Definition: "Persisting with a decision because of past investments of time, money, or effort, rather than evaluating current and future value.",
		Examples: []string{
			"I've already spent so much money on this car - I can't sell it now.",
		},
	},
}
