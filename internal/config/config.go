// Package config holds the mapping from country codes to the upstream
// Google Calendar holiday calendars. The mapping is configuration data, not
// logic: the built-in table can be extended or overridden with a YAML file.
package config

import (
	"context"
	"fmt"
	"io"
	"sort"

	"cloudeng.io/cmdutil/cmdyaml"
	"gopkg.in/yaml.v3"
)

// Calendar identifies the upstream holiday calendar for one country and the
// language its event names are reported in.
type Calendar struct {
	ID   string `yaml:"calendar_id"`
	Lang string `yaml:"lang"`
}

// Calendars maps ISO-3166 alpha-2 country codes to their Google Calendar
// public holiday calendar. JP uses the Japanese locale, everything else
// English.
var Calendars = map[string]Calendar{
	"JP": {ID: "ja.japanese.official#holiday@group.v.calendar.google.com", Lang: "ja"},
	"US": {ID: "en.usa.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"GB": {ID: "en.uk.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"UK": {ID: "en.uk.official#holiday@group.v.calendar.google.com", Lang: "en"}, // alias for GB
	"KR": {ID: "en.south_korea.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"CA": {ID: "en.canadian.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"AU": {ID: "en.australian.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"NZ": {ID: "en.new_zealand.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"DE": {ID: "en.german.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"FR": {ID: "en.french.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"IT": {ID: "en.italian.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"ES": {ID: "en.spain.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"BR": {ID: "en.brazilian.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"MX": {ID: "en.mexican.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"IN": {ID: "en.indian.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"CN": {ID: "en.china.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"HK": {ID: "en.hong_kong.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"SG": {ID: "en.singapore.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"MY": {ID: "en.malaysia.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"TH": {ID: "en.thai.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"VN": {ID: "en.vietnamese.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"PH": {ID: "en.philippines.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"ID": {ID: "en.indonesian.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"TR": {ID: "en.turkish.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"SA": {ID: "en.sa.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"AE": {ID: "en.ae.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"IL": {ID: "en.jewish.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"ZA": {ID: "en.sa.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"RU": {ID: "en.russian.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"PL": {ID: "en.polish.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"NL": {ID: "en.dutch.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"BE": {ID: "en.be.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"AT": {ID: "en.austrian.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"CH": {ID: "en.ch.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"SE": {ID: "en.swedish.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"NO": {ID: "en.norwegian.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"DK": {ID: "en.danish.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"FI": {ID: "en.finnish.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"PT": {ID: "en.portuguese.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"GR": {ID: "en.greek.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"IE": {ID: "en.irish.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"CZ": {ID: "en.czech.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"HU": {ID: "en.hungarian.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"RO": {ID: "en.romanian.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"BG": {ID: "en.bulgarian.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"HR": {ID: "en.croatian.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"RS": {ID: "en.rs.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"SI": {ID: "en.slovenian.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"SK": {ID: "en.slovak.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"LT": {ID: "en.lithuanian.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"LV": {ID: "en.latvian.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"EE": {ID: "en.ee.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"UA": {ID: "en.ukrainian.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"BY": {ID: "en.by.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"AR": {ID: "en.ar.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"CL": {ID: "en.cl.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"CO": {ID: "en.co.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"PE": {ID: "en.pe.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"VE": {ID: "en.ve.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"CR": {ID: "en.cr.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"AO": {ID: "en.ao.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"AW": {ID: "en.aw.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"BD": {ID: "en.bd.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"BI": {ID: "en.bi.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"BW": {ID: "en.bw.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"CW": {ID: "en.cw.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"DJ": {ID: "en.dj.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"DO": {ID: "en.do.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"EG": {ID: "en.eg.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"GE": {ID: "en.ge.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"HN": {ID: "en.hn.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"IS": {ID: "en.is.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"JM": {ID: "en.jm.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"KE": {ID: "en.ke.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"LU": {ID: "en.lu.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"MA": {ID: "en.ma.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"MW": {ID: "en.mw.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"MZ": {ID: "en.mz.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"NG": {ID: "en.ng.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"NI": {ID: "en.ni.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"PY": {ID: "en.py.official#holiday@group.v.calendar.google.com", Lang: "en"},
	"YV": {ID: "en.ve.official#holiday@group.v.calendar.google.com", Lang: "en"}, // legacy alias for VE
}

// Load returns the built-in mapping extended by entries from the given YAML
// file. File entries win over built-in ones for the same country code.
func Load(file string) (map[string]Calendar, error) {
	merged := make(map[string]Calendar, len(Calendars))
	for cc, cal := range Calendars {
		merged[cc] = cal
	}
	override := map[string]Calendar{}
	if err := cmdyaml.ParseConfigFile(context.Background(), file, &override); err != nil {
		return nil, err
	}
	for cc, cal := range override {
		if cal.ID == "" {
			return nil, fmt.Errorf("%v: entry for %v has no calendar_id", file, cc)
		}
		merged[cc] = cal
	}
	return merged, nil
}

// Codes returns the country codes of a mapping, sorted.
func Codes(calendars map[string]Calendar) []string {
	codes := make([]string, 0, len(calendars))
	for cc := range calendars {
		codes = append(codes, cc)
	}
	sort.Strings(codes)
	return codes
}

// WriteConfig writes the mapping as YAML, suitable as a starting point for
// an override file.
func WriteConfig(w io.Writer, calendars map[string]Calendar) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(calendars)
}
