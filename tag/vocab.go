package tag

// The closed vocabulary of public highlighting tags, per the GLOSSARY and
// §6 tag vocabulary. Parent/child relations here determine fallback order in
// [Tag.Set]; a style author who only has a rule for [Comment] still matches
// [LineComment] and [BlockComment] because both fall back to it.
//
//nolint:gochecknoglobals // Closed, process-lifetime vocabulary, mirrors a const block.
var (
	Comment      = Define("comment", nil)
	LineComment  = Define("lineComment", Comment)
	BlockComment = Define("blockComment", Comment)
	DocComment   = Define("docComment", Comment)

	Name           = Define("name", nil)
	VariableName   = Define("variableName", Name)
	TypeName       = Define("typeName", Name)
	TagName        = Define("tagName", Name)
	PropertyName   = Define("propertyName", Name)
	AttributeName  = Define("attributeName", Name)
	ClassName      = Define("className", Name)
	LabelName      = Define("labelName", Name)
	NamespaceName  = Define("namespaceName", Name)
	MacroName      = Define("macroName", Name)

	Literal        = Define("literal", nil)
	String         = Define("string", Literal)
	DocString      = Define("docString", Literal)
	Character      = Define("character", Literal)
	Number         = Define("number", Literal)
	Integer        = Define("integer", Number)
	Float          = Define("float", Number)
	Bool           = Define("bool", Literal)
	RegExp         = Define("regexp", Literal)
	Escape         = Define("escape", Literal)
	Color          = Define("color", Literal)
	URL            = Define("url", Literal)

	Keyword          = Define("keyword", nil)
	Self             = Define("self", Keyword)
	Null             = Define("null", Keyword)
	AtomKeyword      = Define("atom", Keyword)
	UnitKeyword      = Define("unit", Keyword)
	ModifierKeyword  = Define("modifier", Keyword)
	OperatorKeyword  = Define("operatorKeyword", Keyword)
	ControlKeyword   = Define("controlKeyword", Keyword)
	DefinitionKeyword = Define("definitionKeyword", Keyword)
	ModuleKeyword    = Define("moduleKeyword", Keyword)

	Operator           = Define("operator", nil)
	DerefOperator      = Define("derefOperator", Operator)
	ArithmeticOperator = Define("arithmeticOperator", Operator)
	LogicOperator      = Define("logicOperator", Operator)
	BitwiseOperator    = Define("bitwiseOperator", Operator)
	CompareOperator    = Define("compareOperator", Operator)
	UpdateOperator     = Define("updateOperator", Operator)
	DefinitionOperator = Define("definitionOperator", Operator)
	TypeOperator       = Define("typeOperator", Operator)
	ControlOperator    = Define("controlOperator", Operator)

	Punctuation    = Define("punctuation", nil)
	Separator      = Define("separator", Punctuation)
	Bracket        = Define("bracket", Punctuation)
	AngleBracket   = Define("angleBracket", Bracket)
	SquareBracket  = Define("squareBracket", Bracket)
	ParenBracket   = Define("paren", Bracket)
	BraceBracket   = Define("brace", Bracket)

	Content        = Define("content", nil)
	Heading        = Define("heading", Content)
	Heading1       = Define("heading1", Heading)
	Heading2       = Define("heading2", Heading)
	Heading3       = Define("heading3", Heading)
	Heading4       = Define("heading4", Heading)
	Heading5       = Define("heading5", Heading)
	Heading6       = Define("heading6", Heading)
	ContentSeparator = Define("contentSeparator", Content)
	Emphasis       = Define("emphasis", Content)
	Strong         = Define("strong", Content)
	Link           = Define("link", Content)
	Quote          = Define("quote", Content)
	Monospace      = Define("monospace", Content)
	Strikethrough  = Define("strikethrough", Content)

	Inserted = Define("inserted", nil)
	Deleted  = Define("deleted", nil)
	Changed  = Define("changed", nil)

	Invalid = Define("invalid", nil)

	Meta                  = Define("meta", nil)
	DocumentMeta          = Define("documentMeta", Meta)
	Annotation            = Define("annotation", Meta)
	ProcessingInstruction = Define("processingInstruction", Meta)

	Atom = AtomKeyword
)

// Modifiers, per §6. Applying one to a tag in the vocabulary above produces
// a canonical, interned tag distinct from (but falling back to) the base.
//
//nolint:gochecknoglobals // Closed, process-lifetime vocabulary.
var (
	Definition = DefineModifier("definition")
	Constant   = DefineModifier("constant")
	Function   = DefineModifier("function")
	Standard   = DefineModifier("standard")
	Local      = DefineModifier("local")
	Special    = DefineModifier("special")
)
