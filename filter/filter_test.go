package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var defaultKeywords = []string{"특정 장애인 단체 집회시위", "장애인", "집회", "시위"}

func TestIsToday(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dateStr string
		want    bool
	}{
		{"exact date", "2024-05-01", true},
		{"date with suffix", "2024-05-01 공지", true},
		{"date with prefix", "등록일 2024-05-01", true},
		{"yesterday", "2024-04-30", false},
		{"dotted form", "2024.05.01", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsToday(tt.dateStr, now))
		})
	}
}

func TestMatchFindsKeyword(t *testing.T) {
	k := NewKeywords([]string{"집회"})

	keyword, ok := k.Match("오늘의 장애인 집회 관련 공지")
	assert.True(t, ok)
	assert.Equal(t, "집회", keyword)
}

func TestMatchNoKeyword(t *testing.T) {
	k := NewKeywords(defaultKeywords)

	keyword, ok := k.Match("일반 공지사항")
	assert.False(t, ok)
	assert.Empty(t, keyword)
}

func TestMatchPrefersEarlierKeyword(t *testing.T) {
	k := NewKeywords(defaultKeywords)

	// The title carries both 장애인 and 집회; list order decides, not
	// position in the title.
	keyword, ok := k.Match("오늘의 장애인 집회 관련 공지")
	assert.True(t, ok)
	assert.Equal(t, "장애인", keyword)
}

func TestMatchListOrderBeatsTitleOrder(t *testing.T) {
	k := NewKeywords([]string{"시위", "집회"})

	keyword, ok := k.Match("집회 및 시위 예정 안내")
	assert.True(t, ok)
	assert.Equal(t, "시위", keyword)
}

func TestMatchCompoundKeywordWins(t *testing.T) {
	k := NewKeywords(defaultKeywords)

	// The compound phrase contains shorter keywords; the earliest list
	// entry still wins.
	keyword, ok := k.Match("특정 장애인 단체 집회시위 예고 안내")
	assert.True(t, ok)
	assert.Equal(t, "특정 장애인 단체 집회시위", keyword)
}

func TestMatchCaseInsensitive(t *testing.T) {
	k := NewKeywords([]string{"Strike"})

	keyword, ok := k.Match("SUBWAY STRIKE NOTICE")
	assert.True(t, ok)
	assert.Equal(t, "Strike", keyword, "reported keyword keeps configured casing")
}
