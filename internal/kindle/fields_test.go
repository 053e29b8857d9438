package kindle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardosoteldo/kindle-highlights/internal/entities"
)

func TestExtractPage(t *testing.T) {
	t.Run("single page", func(t *testing.T) {
		line := "- Your Highlight on page 46 | Location 694-694 | Added on Sunday, August 27, 2023 1:37:08 PM"
		assert.Equal(t, []int{46}, ExtractPage(line))
	})

	t.Run("page range", func(t *testing.T) {
		line := "- Your Highlight on pages 40-45 | Location 542-546 | Added on Thursday, November 17, 2022 12:55:54 PM"
		assert.Equal(t, []int{40, 45}, ExtractPage(line))
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, []int{10}, ExtractPage("on PAGE 10"))
	})

	t.Run("no page information", func(t *testing.T) {
		line := "- Your Bookmark at location 346 | Added on Saturday, 26 March 2016 15:46:21"
		assert.Empty(t, ExtractPage(line))
	})

	t.Run("result length is always 0, 1 or 2", func(t *testing.T) {
		lines := []string{
			"",
			"page 1",
			"pages 1-5",
			"pages 1-5 and page 9",
		}
		for _, line := range lines {
			assert.LessOrEqual(t, len(ExtractPage(line)), 2, "line %q", line)
		}
	})
}

func TestExtractLocation(t *testing.T) {
	t.Run("location range", func(t *testing.T) {
		line := "- Your Highlight on page 46 | Location 694-698 | Added on Sunday, August 27, 2023 1:37:08 PM"
		assert.Equal(t, []int{694, 698}, ExtractLocation(line))
	})

	t.Run("single location", func(t *testing.T) {
		line := "- Your Note on page 217 | Location 3326 | Added on Friday, September 29, 2023 2:00:29 PM"
		assert.Equal(t, []int{3326}, ExtractLocation(line))
	})

	t.Run("no location information", func(t *testing.T) {
		assert.Empty(t, ExtractLocation("- Your Highlight on page 46"))
	})
}

func TestExtractDate(t *testing.T) {
	t.Run("full metadata line", func(t *testing.T) {
		line := "- Your Highlight on pages 40-45 | Location 542-546 | Added on Thursday, November 17, 2022 12:55:54 PM"
		date := ExtractDate(line)
		require.NotNil(t, date)
		assert.Equal(t, entities.Date{Year: 2022, Month: 11, Day: 17}, *date)
	})

	t.Run("every month name resolves", func(t *testing.T) {
		names := []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		}
		for i, name := range names {
			date := ExtractDate("Added on Monday, " + name + " 1, 2024")
			require.NotNil(t, date, "month %s", name)
			assert.Equal(t, i+1, date.Month)
		}
	})

	t.Run("unknown month name", func(t *testing.T) {
		assert.Nil(t, ExtractDate("Added on Jueves, Noviembre 17, 2022"))
	})

	t.Run("non-english date layout", func(t *testing.T) {
		// Day-first layouts are not handled: the date comes out absent.
		assert.Nil(t, ExtractDate("Added on Saturday, 26 March 2016 14:59:39"))
	})

	t.Run("no date", func(t *testing.T) {
		assert.Nil(t, ExtractDate("- Your Highlight on page 46"))
	})
}

func TestExtractTime(t *testing.T) {
	t.Run("12 hour to 24 hour conversion", func(t *testing.T) {
		cases := []struct {
			in   string
			want entities.TimeOfDay
		}{
			{"11:59:59 PM", entities.TimeOfDay{Hour: 23, Minute: 59, Second: 59}},
			{"12:00:00 AM", entities.TimeOfDay{Hour: 0, Minute: 0, Second: 0}},
			{"12:00:01 AM", entities.TimeOfDay{Hour: 0, Minute: 0, Second: 1}},
			{"11:59:59 AM", entities.TimeOfDay{Hour: 11, Minute: 59, Second: 59}},
			{"12:00:00 PM", entities.TimeOfDay{Hour: 12, Minute: 0, Second: 0}},
			{"12:00:01 PM", entities.TimeOfDay{Hour: 12, Minute: 0, Second: 1}},
		}
		for _, tc := range cases {
			got := ExtractTime(tc.in)
			require.NotNil(t, got, "input %q", tc.in)
			assert.Equal(t, tc.want, *got, "input %q", tc.in)
		}
	})

	t.Run("anchored to end of line", func(t *testing.T) {
		assert.NotNil(t, ExtractTime("Added on Sunday, August 27, 2023 1:37:08 PM"))
		assert.Nil(t, ExtractTime("1:37:08 PM trailing text"))
	})

	t.Run("24 hour timestamps are not matched", func(t *testing.T) {
		assert.Nil(t, ExtractTime("Added on Saturday, 26 March 2016 14:59:39"))
	})

	t.Run("lowercase period", func(t *testing.T) {
		got := ExtractTime("6:45:50 pm")
		require.NotNil(t, got)
		assert.Equal(t, entities.TimeOfDay{Hour: 18, Minute: 45, Second: 50}, *got)
	})
}
