package catalog

// PackSpec is one supplier SKU's pack-size data from the order guide.
// Only the fields that apply to a given item are set.
type PackSpec struct {
	SKU string

	UnitsPerCase float64
	LbsPerUnit   float64

	BagsPerCase float64
	LbsPerBag   float64

	LbsPerCase float64

	PacksPerCase float64
	LbsPerPack   float64

	LoavesPerCase float64
	OzPerLoaf     float64
	SlicesPerLoaf float64

	OzPerPiece   float64
	OzPerPortion float64
	OzPerRing    float64

	PattiesPerCase float64
	BunsPerCase    float64
	CtPerCase      float64
	OzPerCup       float64

	PacksPerCoffeeBox float64

	BottlesPerCase float64
	OzPerBottle    float64
}

// Packs keys the order-guide SKU table by internal item name.
var Packs = map[string]PackSpec{
	"eggs":           {SKU: "775616", UnitsPerCase: 2, LbsPerUnit: 20},
	"red_pots":       {SKU: "39332", BagsPerCase: 6, LbsPerBag: 6},
	"bacon":          {SKU: "423530", LbsPerCase: 25},
	"sausage":        {SKU: "652253", BagsPerCase: 2, LbsPerBag: 10},
	"ham":            {SKU: "577234", PacksPerCase: 8, LbsPerPack: 3},
	"pancake_mix":    {SKU: "993457", LbsPerBag: 45},
	"ft_bread":       {SKU: "101757", LoavesPerCase: 12, OzPerLoaf: 30, SlicesPerLoaf: 9},
	"chicken_strips": {SKU: "646261", BagsPerCase: 6, LbsPerBag: 5, OzPerPiece: 3},
	"fries":          {SKU: "525302", BagsPerCase: 6, LbsPerBag: 6, OzPerPortion: 6},
	"onion_rings":    {SKU: "589431", BagsPerCase: 8, LbsPerBag: 2.5, OzPerRing: 1.25},
	"steakburgers":   {SKU: "798706", PattiesPerCase: 60, OzPerPiece: 5.33},
	"burger_buns":    {SKU: "1000660", BunsPerCase: 96},
	"mayo_packets":   {SKU: "65745", CtPerCase: 200},
	"ketchup_packets": {
		SKU: "59007", CtPerCase: 1000,
	},
	"mustard_packets": {SKU: "55305", CtPerCase: 500},
	"syrup_packets":   {SKU: "605319", CtPerCase: 200},
	"butter_packets":  {SKU: "551715", CtPerCase: 400},
	"powdered_sugar":  {SKU: "336275", BagsPerCase: 12, LbsPerBag: 2, OzPerCup: 2},
	"coffee_pack":     {SKU: "1023877", PacksPerCase: 60, PacksPerCoffeeBox: 2},
	"oj":              {SKU: "267574", BottlesPerCase: 8, OzPerBottle: 59},
	"aj":              {SKU: "147958", BottlesPerCase: 12, OzPerBottle: 32},
}

// Pancakes yielded per pound of dry mix: 738 pancakes from a 45 lb bag.
const PancakesPerLbMix = 738.0 / 45.0

// Fixed slice-to-pound factors for proteins sold by piece count.
const (
	BaconSlicesPerLb  = 9.0
	SausageLinksPerLb = 20.0
	HamOzPerPiece     = 1.0
)
