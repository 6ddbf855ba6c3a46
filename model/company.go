package model

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CompanyInfo is the report heading scraped from the first page. Empty
// fields mean the value was not found.
type CompanyInfo struct {
	Name    string
	Project string
}

var (
	factoryPattern = regexp.MustCompile(`공장명\s*:\s*(.*?)\s*[○\n]`)
	projectPattern = regexp.MustCompile(`공 사 명\s*:\s*(.*)`)
)

// ParseCompanyInfo extracts the company name and project title from the
// free text of the first report page. A "공장명 :" field overrides the
// heuristic first-line name. Missing values are left empty.
func ParseCompanyInfo(text string) CompanyInfo {
	var info CompanyInfo
	if text == "" {
		return info
	}
	text = norm.NFC.String(text)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// Form codes and unit work place headings carry the name after a colon.
		if strings.Contains(line, "나-1") || strings.Contains(line, "단위작업") {
			if _, after, ok := strings.Cut(line, ":"); ok {
				if after = strings.TrimSpace(after); after != "" {
					info.Name = after
					break
				}
			}
			continue
		}
		if strings.Contains(line, "측정") && strings.Contains(line, "결과") {
			continue
		}
		info.Name = line
		break
	}

	if strings.Contains(text, "공장명") {
		if m := factoryPattern.FindStringSubmatch(text); m != nil {
			info.Name = strings.TrimSpace(m[1])
		}
	}
	if strings.Contains(text, "공 사 명") {
		if m := projectPattern.FindStringSubmatch(text); m != nil {
			info.Project = strings.TrimSpace(m[1])
		}
	}
	return info
}
