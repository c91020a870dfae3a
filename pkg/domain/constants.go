package domain

// Field names of a component on the wire. The engine's generic field accessor
// and the codecs share these keys.
const (
	FieldBlock   = "block"
	FieldElem    = "elem"
	FieldMods    = "mods"
	FieldAttrs   = "attrs"
	FieldContent = "content"
	FieldTag     = "tag"
	FieldCls     = "cls"
	FieldMix     = "mix"
	FieldJS      = "js"
)
