package launcher

// Density is an Android launcher icon density bucket.
type Density struct {
	Name string
	Size int // square, in pixels
}

// Densities lists the mipmap buckets in output order.
var Densities = []Density{
	{Name: "mdpi", Size: 48},
	{Name: "hdpi", Size: 72},
	{Name: "xhdpi", Size: 96},
	{Name: "xxhdpi", Size: 144},
	{Name: "xxxhdpi", Size: 192},
}

func (d Density) Dir() string {
	return "mipmap-" + d.Name
}
