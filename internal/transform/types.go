package transform

import (
	"fmt"
	"strings"

	"github.com/yacobolo/svgcomp/internal/extract"
	"github.com/yacobolo/svgcomp/internal/svgast"
)

// DimensionMode controls how the root width and height are handled
type DimensionMode string

// Dimension modes
const (
	DimensionsKeep   DimensionMode = "keep"   // Leave width/height as written
	DimensionsRemove DimensionMode = "remove" // Drop root width/height
	DimensionsSize   DimensionMode = "size"   // Bind root width/height to the size prop
)

// FillPolicy is the paint given to shapes that inherit no fill or stroke
type FillPolicy string

// Fill policies
const (
	FillOff          FillPolicy = "off"
	FillCurrentColor FillPolicy = "currentColor"
	FillNone         FillPolicy = "none"
)

// Options toggles the transformation passes. The zero value runs nothing.
type Options struct {
	Dimensions         DimensionMode
	SplitColors        bool // Bind literal colors to color props
	SplitSpecialColors bool // Also bind none, transparent, currentColor and inherit
	SplitStrokeWidths  bool // Bind literal stroke widths to strokeWidth props
	FixedStrokeWidth   bool // Inject vector-effect="non-scaling-stroke" on stroked shapes
	FillPolicy         FillPolicy
	Accessibility      bool
	IDPrefix           string // Prefix for generated title/desc ids (default: "svg")
	RemoveComments     bool
	RemoveDuplicates   bool
	RemoveEditorData   bool
}

// Feature identifies a pass that ran
type Feature uint

// Features in pass order
const (
	FeatureDimensions Feature = 1 << iota
	FeatureSplitColors
	FeatureSplitStrokeWidths
	FeatureFixedStrokeWidth
	FeatureFillPolicy
	FeatureAccessibility
	FeatureRemoveComments
	FeatureRemoveDuplicates
	FeatureRemoveEditorData
)

var featureNames = []struct {
	f    Feature
	name string
}{
	{FeatureDimensions, "dimensions"},
	{FeatureSplitColors, "splitColors"},
	{FeatureSplitStrokeWidths, "splitStrokeWidths"},
	{FeatureFixedStrokeWidth, "fixedStrokeWidth"},
	{FeatureFillPolicy, "fillPolicy"},
	{FeatureAccessibility, "accessibility"},
	{FeatureRemoveComments, "removeComments"},
	{FeatureRemoveDuplicates, "removeDuplicates"},
	{FeatureRemoveEditorData, "removeEditorData"},
}

// Has reports whether every feature in f is set
func (fs Feature) Has(f Feature) bool {
	return fs&f == f
}

// Names lists the set features in pass order
func (fs Feature) Names() []string {
	names := []string{}
	for _, fn := range featureNames {
		if fs.Has(fn.f) {
			names = append(names, fn.name)
		}
	}
	return names
}

func (fs Feature) String() string {
	return strings.Join(fs.Names(), ",")
}

// PropKind is what a generated prop controls
type PropKind string

// Prop kinds
const (
	PropSize        PropKind = "size"
	PropColor       PropKind = "color"
	PropStrokeWidth PropKind = "strokeWidth"
)

// Prop is a component input backed by one or more bound attributes
type Prop struct {
	Name    string
	Kind    PropKind
	Default string // Literal value from the source SVG
}

// Warning is a site a pass could not safely rewrite
type Warning struct {
	Pass    string
	Element string
	Message string
}

func (w Warning) String() string {
	if w.Element == "" {
		return fmt.Sprintf("%s: %s", w.Pass, w.Message)
	}
	return fmt.Sprintf("%s: %s: %s", w.Pass, w.Element, w.Message)
}

// Result is the rewritten document plus the metadata the generators need
type Result struct {
	Doc          *svgast.Document
	Colors       []*extract.Color
	StrokeWidths []*extract.StrokeWidth
	Props        []Prop
	Features     Feature
	Warnings     []Warning
}
