package analyzer

// Category is one of the fixed content-type buckets a message is classified
// into. The set is closed: unknown positive media codes land in CategoryOther
// instead of fragmenting the distribution.
type Category int

const (
	CategoryText Category = iota
	CategoryImage
	CategoryVideo
	CategoryAudio
	CategoryDocument
	CategorySticker
	CategoryLocation
	CategoryContact
	CategoryGIF
	CategoryOther
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryText,
	CategoryImage,
	CategoryVideo,
	CategoryAudio,
	CategoryDocument,
	CategorySticker,
	CategoryLocation,
	CategoryContact,
	CategoryGIF,
	CategoryOther,
}

// String returns the display label of the category.
func (c Category) String() string {
	switch c {
	case CategoryText:
		return "Text"
	case CategoryImage:
		return "Image"
	case CategoryVideo:
		return "Video"
	case CategoryAudio:
		return "Audio"
	case CategoryDocument:
		return "Document"
	case CategorySticker:
		return "Sticker"
	case CategoryLocation:
		return "Location"
	case CategoryContact:
		return "Contact"
	case CategoryGIF:
		return "GIF"
	default:
		return "Other"
	}
}

// Canonical media codes as stored on Message.MediaType.
const (
	mediaCodeText     = 0
	mediaCodeImage    = 1
	mediaCodeAudio    = 2
	mediaCodeVideo    = 3
	mediaCodeContact  = 4
	mediaCodeLocation = 5
	mediaCodeDocument = 9
	mediaCodeGIF      = 13
	mediaCodeSticker  = 20
)

// ClassifyMediaType maps a canonical media code to its Category.
// Zero means plain text, unknown codes degrade to CategoryOther.
func ClassifyMediaType(code int) Category {
	switch code {
	case mediaCodeText:
		return CategoryText
	case mediaCodeImage:
		return CategoryImage
	case mediaCodeAudio:
		return CategoryAudio
	case mediaCodeVideo:
		return CategoryVideo
	case mediaCodeContact:
		return CategoryContact
	case mediaCodeLocation:
		return CategoryLocation
	case mediaCodeDocument:
		return CategoryDocument
	case mediaCodeGIF:
		return CategoryGIF
	case mediaCodeSticker:
		return CategorySticker
	default:
		return CategoryOther
	}
}

// rawTypeMap aliases the provider's raw message_type codes onto the canonical
// media codes above. Several raw codes resolve to the same bucket (voice notes
// and audio are both audio, product and order messages count as documents).
var rawTypeMap = map[int]int{
	0:  mediaCodeText,
	1:  mediaCodeImage,
	2:  mediaCodeAudio,
	3:  mediaCodeVideo,
	4:  mediaCodeContact,
	5:  mediaCodeLocation,
	7:  mediaCodeDocument,
	8:  mediaCodeAudio,
	9:  mediaCodeDocument,
	13: mediaCodeGIF,
	14: mediaCodeAudio, // voice note
	15: mediaCodeImage,
	20: mediaCodeSticker,
	26: mediaCodeVideo, // video note
	42: mediaCodeDocument,
	43: mediaCodeDocument,
}

// NormalizeRawType converts a raw provider message_type into the canonical
// media code used everywhere else. Unknown raw codes are treated as text,
// matching the ingestion behavior of the message store.
func NormalizeRawType(raw int) int {
	if code, ok := rawTypeMap[raw]; ok {
		return code
	}
	return mediaCodeText
}
