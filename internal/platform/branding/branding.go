// Package branding holds product naming shared by web surfaces.
package branding

// AppName is the product name shown in page titles and headers.
const AppName = "Onboard"
