package models

// EntityKind is the semantic type of an extracted entity.
type EntityKind string

const (
	EntityPerson       EntityKind = "person"
	EntityLocation     EntityKind = "location"
	EntityOrganization EntityKind = "organization"
	EntityMoney        EntityKind = "money"
	EntityPercent      EntityKind = "percent"
	EntityTime         EntityKind = "time"
	EntityDate         EntityKind = "date"
	EntityEmail        EntityKind = "email"
	EntityPhone        EntityKind = "phone"
	EntityURL          EntityKind = "url"
	EntityHashtag      EntityKind = "hashtag"
	EntityMention      EntityKind = "mention"
)

// Entity is one extracted span. Offsets are rune indexes into the classified
// text. Entities of different kinds may overlap; no dedup is performed.
type Entity struct {
	Text       string     `json:"text"`
	Kind       EntityKind `json:"kind"`
	StartIndex int        `json:"startIndex"`
	EndIndex   int        `json:"endIndex"`
}

// TextType is the coarse semantic category of the reconstructed text.
type TextType string

const (
	TypeQuestion    TextType = "question"
	TypeMessage     TextType = "message"
	TypeURL         TextType = "url"
	TypePhoneNumber TextType = "phoneNumber"
	TypeEmail       TextType = "email"
	TypeAddress     TextType = "address"
	TypeDateTime    TextType = "dateTime"
	TypeNumber      TextType = "number"
	TypeCode        TextType = "code"
	TypeGeneralText TextType = "generalText"
)

// Language is the dominant character class of the text.
type Language string

const (
	LangKorean  Language = "ko"
	LangEnglish Language = "en"
	LangNumber  Language = "number"
	LangMixed   Language = "mixed"
)

// ClassificationResult labels the full reconstructed text.
type ClassificationResult struct {
	TextType      TextType `json:"textType"`
	Language      Language `json:"language"`
	Entities      []Entity `json:"entities"`
	Keywords      []string `json:"keywords"`
	OCRConfidence float64  `json:"ocrConfidence"`
}
