package flight

// Logo dimensions used throughout the module. 32x32 fits cleanly in the
// 34px logo column on both 128x64 and 64x64 panels.
const (
	LogoWidth  = 32
	LogoHeight = 32
	LogoPixels = LogoWidth * LogoHeight
)

// TransparentRGB565 is the sentinel for transparent logo pixels: pure magenta,
// chosen to never collide with post-processed airline artwork.
const TransparentRGB565 uint16 = 0xF81F

// Airport identifies one end of a route. Empty strings mean unknown, not error.
type Airport struct {
	CodeICAO string `json:"code_icao"`
	CodeIATA string `json:"code_iata"`
	Name     string `json:"name"`
}

// Telemetry is a snapshot of live state-vector data for one aircraft, in SI
// units. Each value is paired with a Has flag; a field counts as present only
// when its flag is set.
type Telemetry struct {
	BaroAltitude float64 `json:"baro_altitude"` // metres
	Velocity     float64 `json:"velocity"`      // m/s ground speed
	Heading      float64 `json:"heading"`       // degrees true
	VerticalRate float64 `json:"vertical_rate"` // m/s, positive = climbing

	HasAltitude     bool `json:"has_altitude"`
	HasVelocity     bool `json:"has_velocity"`
	HasHeading      bool `json:"has_heading"`
	HasVerticalRate bool `json:"has_vertical_rate"`
}

// Record is one enriched flight ready for display. It is immutable for the
// duration of a render call and exclusively owned by the caller.
type Record struct {
	// Flight identifiers
	Ident     string `json:"ident"`
	IdentICAO string `json:"ident_icao"`
	IdentIATA string `json:"ident_iata"`

	// Operator
	OperatorCode string `json:"operator_code"`
	OperatorICAO string `json:"operator_icao"`
	OperatorIATA string `json:"operator_iata"`

	// Route
	Origin      Airport `json:"origin"`
	Destination Airport `json:"destination"`

	// Aircraft
	AircraftCode string `json:"aircraft_code"`

	// Human-friendly display strings
	AirlineName  string `json:"airline_display_name_full"`
	AircraftName string `json:"aircraft_display_name_short"`

	Telemetry Telemetry `json:"telemetry"`

	// Airline logo: pre-converted RGB565 pixels in row-major order at
	// LogoWidth x LogoHeight. Empty means no logo was available.
	Logo []uint16 `json:"-"`
}

// HasValidLogo reports whether the record carries a logo buffer of exactly
// the expected pixel count. Any other length is treated as no logo at all.
func (r *Record) HasValidLogo() bool {
	return len(r.Logo) == LogoPixels
}
