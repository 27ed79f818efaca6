package tips

// catalog is served when no tips table is configured or it cannot be read.
var catalog = []Tip{
	{
		Title: "Choose the Right Box",
		Body: "Use a variety of box sizes to suit different items. Pack heavy items like books " +
			"in small boxes and lighter items such as linens in larger boxes. Specialized kits " +
			"for dishes, glassware and wardrobe items keep fragile belongings safe.",
	},
	{
		Title: "Group Items and Pack by Room",
		Body: "When packing, group similar items together and organize boxes by room (e.g. " +
			"kitchen, master bedroom). Prepare a separate essentials box for items you'll need " +
			"right away at your new home like toiletries, phone chargers and bedding.",
	},
	{
		Title: "Label Every Box",
		Body: "Label boxes clearly with both a description of the contents and the room they're " +
			"destined for. Numbering each box and keeping a master inventory list helps track " +
			"your belongings. Mark boxes containing breakables as ‘FRAGILE’.",
	},
	{
		Title: "Seal Boxes Securely",
		Body: "Tape the top and bottom seams of each box rather than just folding the flaps. " +
			"Choose a strong packing tape capable of holding the weight of your heaviest items.",
	},
	{
		Title: "Don't Overload Boxes",
		Body: "Keep box weights under roughly 50 lbs to prevent injuries and avoid crushed contents. " +
			"Use proper lifting aids like gloves or a forearm forklift for heavier objects.",
	},
	{
		Title: "Disassemble Furniture Carefully",
		Body: "Take apart furniture when possible and store the hardware (nuts, bolts, screws) in " +
			"labelled bags. Use moving blankets to protect pieces from scratches during transit.",
	},
	{
		Title: "Load Your Truck Strategically",
		Body: "Place heavier boxes and furniture at the bottom and toward the front of the truck to " +
			"maintain stability. Stack lighter boxes on top. Load items you will need first last " +
			"so they’re easily accessible at your destination.",
	},
	{
		Title: "Take a Video of Your Home Contents",
		Body: "Before packing begins, record a quick video walkthrough of your home. This will help " +
			"you verify that everything arrives safely and can document damage for insurance claims " +
			"if needed.",
	},
	{
		Title: "Sort and Declutter",
		Body: "Reduce moving costs by touching every item you own and deciding whether it should move " +
			"with you. Donate, sell or dispose of things you no longer need.",
	},
	{
		Title: "Gather Supplies Early",
		Body: "If you’re doing your own packing, gather boxes, bubble wrap, paper and markers well " +
			"ahead of moving day. Don’t forget to schedule pickup or delivery of specialty boxes " +
			"and packing kits if required.",
	},
}

// Catalog returns a copy of the built-in tips.
func Catalog() []Tip {
	out := make([]Tip, len(catalog))
	copy(out, catalog)
	return out
}
