package launcher

const (
	AdaptiveDir = "mipmap-anydpi-v26"

	DrawableBackground = "@drawable/ic_launcher_background"
	DrawableForeground = "@drawable/ic_launcher_foreground"
)

// adaptiveIconXML is shared by the normal and round descriptors. The
// monochrome layer reuses the foreground drawable.
const adaptiveIconXML = `<?xml version="1.0" encoding="utf-8"?>
<adaptive-icon xmlns:android="http://schemas.android.com/apk/res/android">
    <background android:drawable="` + DrawableBackground + `" />
    <foreground android:drawable="` + DrawableForeground + `" />
    <monochrome android:drawable="` + DrawableForeground + `" />
</adaptive-icon>`

// AdaptiveIconXML returns the descriptor written for both launcher variants.
func AdaptiveIconXML() string {
	return adaptiveIconXML
}
