package testicon

// DefaultPresets is the stock batch: five webp sizes, then one icon per
// other format.
func DefaultPresets() []Options {
	return []Options{
		{Size: 32, Color: "green", Format: "webp", Prefix: "item_"},
		{Size: 64, Color: "green", Format: "webp", Prefix: "item_"},
		{Size: 128, Color: "green", Format: "webp", Prefix: "item_"},
		{Size: 256, Color: "green", Format: "webp", Prefix: "item_"},
		{Size: 512, Color: "green", Format: "webp", Prefix: "item_"},
		{Size: 64, Color: "blue", Format: "png", Prefix: "item_"},
		{Size: 64, Color: "orange", Format: "ico", Prefix: "item_"},
		{Size: 64, Color: "red", Format: "bmp", Prefix: "item_"},
		{Size: 64, Color: "purple", Format: "svg", Prefix: "item_"},
		{Size: 128, Color: "purple", Format: "svg", Prefix: "item_"},
	}
}
