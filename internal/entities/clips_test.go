package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateString(t *testing.T) {
	date := Date{Year: 2024, Month: 5, Day: 10}
	assert.Equal(t, "2024-05-10", date.String())

	padded := Date{Year: 987, Month: 1, Day: 2}
	assert.Equal(t, "0987-01-02", padded.String())
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "18:45:50", TimeOfDay{Hour: 18, Minute: 45, Second: 50}.String())
	assert.Equal(t, "00:00:01", TimeOfDay{Second: 1}.String())
}

func TestClipJSON(t *testing.T) {
	clip := Clip{
		Type:     ClipTypeHighlight,
		Source:   "Python (Python Documentation Authors)",
		Page:     []int{10},
		Location: []int{100, 105},
		Date:     &Date{Year: 2024, Month: 5, Day: 10},
		Time:     &TimeOfDay{Hour: 18, Minute: 45, Second: 50},
		Content:  "To use formatted string literals, begin a string with f or F.",
	}

	data, err := json.Marshal(clip)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"date":"2024-05-10"`)
	assert.Contains(t, string(data), `"time":"18:45:50"`)

	t.Run("absent fields are omitted", func(t *testing.T) {
		data, err := json.Marshal(Clip{Type: ClipTypeNote, Source: "s", Content: "c"})
		require.NoError(t, err)
		assert.NotContains(t, string(data), "date")
		assert.NotContains(t, string(data), "page")
	})
}
