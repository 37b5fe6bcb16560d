package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   []string
	}{
		{
			name:   "explicit keywords picked up",
			prompt: "서울에서 맛집이랑 카페 다니고 박물관도 보고 싶어",
			want:   []string{"맛집", "카페", "박물관"},
		},
		{
			name:   "no keywords falls back to default",
			prompt: "서울 여행 일정 짜줘",
			want:   []string{"관광지", "맛집"},
		},
		{
			name:   "date intent default",
			prompt: "여자친구랑 데이트 할건데 추천해줘",
			want:   []string{"카페", "맛집", "공원"},
		},
		{
			name:   "family intent default",
			prompt: "가족 여행 코스 알려줘",
			want:   []string{"놀이공원", "박물관", "맛집"},
		},
		{
			name:   "capped at five",
			prompt: "맛집 카페 디저트 한식 양식 중식 일식 다 궁금해",
			want:   []string{"맛집", "카페", "디저트", "한식", "양식"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractKeywords(tt.prompt))
		})
	}
}

//Personal.AI order the ending
