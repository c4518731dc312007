package resource

// Family is the closed set of content categories a resource can belong to.
type Family int

const (
	// FamilyNone means "no family"; an address whose family is not permitted resolves to nothing.
	FamilyNone Family = iota
	FamilyPage
	FamilyPartial
	FamilyExample
	FamilyImage
	FamilyAttachment
	FamilyNav
	FamilyAlias
	FamilyStaticAsset
)

var familyNames = [...]string{
	FamilyNone:        "",
	FamilyPage:        "page",
	FamilyPartial:     "partial",
	FamilyExample:     "example",
	FamilyImage:       "image",
	FamilyAttachment:  "attachment",
	FamilyNav:         "nav",
	FamilyAlias:       "alias",
	FamilyStaticAsset: "static-asset",
}

// Families lists every real family in declaration order.
var Families = []Family{
	FamilyPage, FamilyPartial, FamilyExample, FamilyImage,
	FamilyAttachment, FamilyNav, FamilyAlias, FamilyStaticAsset,
}

func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return ""
	}
	return familyNames[f]
}

// Valid reports whether f is one of the declared families (FamilyNone excluded).
func (f Family) Valid() bool {
	return f > FamilyNone && int(f) < len(familyNames)
}

// Publishable reports whether content of this family is written to the site on its own.
func (f Family) Publishable() bool {
	switch f {
	case FamilyPage, FamilyImage, FamilyAttachment:
		return true
	case FamilyNone, FamilyPartial, FamilyExample, FamilyNav, FamilyAlias, FamilyStaticAsset:
		return false
	}
	return false
}

// ParseFamily maps a family name to its Family. Unknown names yield FamilyNone and false.
func ParseFamily(name string) (Family, bool) {
	for _, f := range Families {
		if familyNames[f] == name {
			return f, true
		}
	}
	return FamilyNone, false
}

// MarshalText implements encoding.TextMarshaler.
func (f Family) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; unknown names decode to FamilyNone.
func (f *Family) UnmarshalText(text []byte) error {
	*f, _ = ParseFamily(string(text))
	return nil
}
