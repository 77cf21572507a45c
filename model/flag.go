package model

type Flags struct {
	Delete bool

	// AWS overrides, empty means "let the SDK resolve it"
	Region  string
	Profile string

	// Output
	Chart    bool
	NoBanner bool
}
