package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"site-uptime-backend/internal/uptime"
)

// Header is the first row of every report file.
var Header = []string{
	"site_id",
	"uptime_last_hour(in minutes)",
	"downtime_last_hour(in minutes)",
	"uptime_last_day(in hours)",
	"downtime_last_day(in hours)",
	"uptime_last_week(in hours)",
	"downtime_last_week(in hours)",
}

// WriteCSV writes the header and one row per report.
func WriteCSV(w io.Writer, reports []uptime.StatusReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range reports {
		row := []string{
			strconv.FormatInt(r.SiteID, 10),
			formatFloat(r.ActiveMinutesLastHour),
			formatFloat(r.InactiveMinutesLastHour),
			formatFloat(r.ActiveHoursLastDay),
			formatFloat(r.InactiveHoursLastDay),
			formatFloat(r.ActiveHoursLastWeek),
			formatFloat(r.InactiveHoursLastWeek),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row for site %d: %w", r.SiteID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
