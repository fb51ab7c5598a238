package http

import (
	"errors"
	"strings"
	"time"

	"plansync/internal/timeline"
)

type dayReq struct {
	Date string `form:"date"`
}

func (r dayReq) validate() error {
	if len(r.Date) > 32 {
		return errors.New("date is too long")
	}
	return nil
}

func (r dayReq) toInput() timeline.DayInput {
	return timeline.DayInput{Date: strings.TrimSpace(r.Date)}
}

type blockResp struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Origin       string    `json:"origin"`
	Column       int       `json:"column"`
	TotalColumns int       `json:"total_columns"`
	LeftPercent  float64   `json:"left_percent"`
	WidthPercent float64   `json:"width_percent"`
}

type dayResp struct {
	Date     string      `json:"date"`
	NotePath string      `json:"note_path"`
	Changed  bool        `json:"changed"`
	AllDay   []string    `json:"all_day"`
	Blocks   []blockResp `json:"blocks"`
}

func (h *handler) newDayResp(o timeline.DayOutput) dayResp {
	resp := dayResp{
		Date:     o.Date,
		NotePath: o.NotePath,
		Changed:  o.Changed,
		AllDay:   o.AllDay,
		Blocks:   make([]blockResp, 0, len(o.Blocks)),
	}
	if resp.AllDay == nil {
		resp.AllDay = []string{}
	}
	for _, b := range o.Blocks {
		resp.Blocks = append(resp.Blocks, blockResp{
			ID:           b.Event.ID,
			Title:        b.Event.Title,
			Start:        b.Event.Start,
			End:          b.Event.End,
			Origin:       string(b.Event.Origin),
			Column:       b.Column,
			TotalColumns: b.TotalColumns,
			LeftPercent:  b.LeftPercent,
			WidthPercent: b.WidthPercent,
		})
	}
	return resp
}
