package render

// A4 page size in millimeters.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)

// BaseDPI is the native screen resolution the scale factors multiply.
const BaseDPI = 96.0

// ScaleProfile names a raster resolution target. Preview stays light for
// on-screen use; print and file export rasterize at higher density.
type ScaleProfile struct {
	Name   string
	Factor float64
}

var (
	ProfilePreview = ScaleProfile{Name: "preview", Factor: 0.8}
	ProfilePrint   = ScaleProfile{Name: "print", Factor: 2.0}
	ProfileExport  = ScaleProfile{Name: "export", Factor: 2.5}
)

// ProfileFor maps a target name to its profile, defaulting to export.
func ProfileFor(target string) ScaleProfile {
	switch target {
	case ProfilePreview.Name:
		return ProfilePreview
	case ProfilePrint.Name:
		return ProfilePrint
	default:
		return ProfileExport
	}
}

// DPI is the effective raster density for the profile.
func (p ScaleProfile) DPI() float64 { return BaseDPI * p.Factor }
