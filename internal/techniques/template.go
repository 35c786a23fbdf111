package techniques

import (
	"strings"
	"time"
)

const (
	SeriesStandardID        = "series_10_12_standard"
	templateSampleSize      = 6
	templateSessionsPerWeek = 3
	DefaultTemplateWeeks    = 4
)

type TemplateExercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Repetitions string `json:"repetitions"`
	Load        string `json:"load"`
	Notes       string `json:"notes"`
}

type TemplateSession struct {
	Session   int                `json:"session"`
	Exercises []TemplateExercise `json:"exercises"`
}

type TemplateWeek struct {
	Week     int               `json:"week"`
	Sessions []TemplateSession `json:"sessions"`
}

type Template struct {
	Program   string         `json:"program"`
	CreatedAt time.Time      `json:"createdAt"`
	Weeks     []TemplateWeek `json:"weeks"`
}

// BuildTemplate lays the first six techniques of a program over three weekly
// sessions: technique i goes to session (i mod 3)+1, the same every week.
// The sarco template always opens with the standard 10-12 series.
func (c *Catalog) BuildTemplate(program string, weeks int, now time.Time) Template {
	if weeks < 1 {
		weeks = DefaultTemplateWeeks
	}

	selected := c.FilterByProgram(program)
	if strings.ToLower(strings.TrimSpace(program)) == "sarco" {
		var series, others []Technique
		for _, t := range selected {
			if t.ID == SeriesStandardID {
				series = append(series, t)
			} else {
				others = append(others, t)
			}
		}
		selected = append(series, others...)
	}
	if len(selected) > templateSampleSize {
		selected = selected[:templateSampleSize]
	}

	tmpl := Template{
		Program:   program,
		CreatedAt: now.UTC(),
	}
	for w := 1; w <= weeks; w++ {
		week := TemplateWeek{Week: w}
		for s := 1; s <= templateSessionsPerWeek; s++ {
			session := TemplateSession{
				Session:   s,
				Exercises: []TemplateExercise{},
			}
			for i, t := range selected {
				if i%templateSessionsPerWeek != s-1 {
					continue
				}
				session.Exercises = append(session.Exercises, TemplateExercise{
					ID:          t.ID,
					Name:        t.Name,
					Repetitions: t.Repetitions,
					Load:        t.Load,
					Notes:       t.Notes,
				})
			}
			week.Sessions = append(week.Sessions, session)
		}
		tmpl.Weeks = append(tmpl.Weeks, week)
	}
	return tmpl
}
