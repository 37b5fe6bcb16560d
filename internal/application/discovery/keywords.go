package discovery

import "strings"

// MaxKeywords caps how many keywords a single request fans out on.
const MaxKeywords = 5

// Keyword vocabularies matched against the free-text request.  Matching is
// plain substring containment; the vocabularies are Korean because that is
// the language of the supported providers.
var (
	foodKeywords = []string{
		"맛집", "음식", "식당", "카페", "디저트", "한식", "양식", "중식", "일식",
		"치킨", "피자", "햄버거", "파스타", "스테이크", "초밥", "라멘", "떡볶이",
		"커피", "베이커리", "브런치", "술집", "바", "펜션",
	}
	attractionKeywords = []string{
		"관광지", "명소", "궁궐", "박물관", "미술관", "공원", "타워", "전망대",
		"쇼핑", "시장", "몰", "거리", "마을", "섬", "해변", "산", "강", "호수",
	}
	activityKeywords = []string{
		"체험", "놀이공원", "테마파크", "스파", "온천", "찜질방", "영화관",
		"노래방", "볼링", "당구", "게임", "VR", "이스케이프룸",
	}
)

// ExtractKeywords pulls search keywords out of a free-text travel request.
// Every vocabulary keyword present in the text is collected in vocabulary
// order; if nothing matches, an intent-based default set is used (date and
// family trips get tailored defaults).  At most MaxKeywords are returned.
func ExtractKeywords(prompt string) []string {
	var keywords []string
	for _, vocab := range [][]string{foodKeywords, attractionKeywords, activityKeywords} {
		for _, kw := range vocab {
			if strings.Contains(prompt, kw) {
				keywords = append(keywords, kw)
			}
		}
	}

	if len(keywords) == 0 {
		switch {
		case strings.Contains(prompt, "데이트"):
			keywords = []string{"카페", "맛집", "공원"}
		case strings.Contains(prompt, "가족"):
			keywords = []string{"놀이공원", "박물관", "맛집"}
		default:
			keywords = []string{"관광지", "맛집"}
		}
	}

	if len(keywords) > MaxKeywords {
		keywords = keywords[:MaxKeywords]
	}
	return keywords
}

//Personal.AI order the ending
