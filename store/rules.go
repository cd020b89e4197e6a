package store

import (
	"strings"

	"github.com/goxwm/goxwm/common"
)

// ApplyRules matches c's WM_CLASS/title against every configured rule
// in order and applies each match cumulatively, same as dwm.c's
// applyrules (tags from every match are OR-ed together, a later match
// overrides an earlier one's floating flag; monitor only changes when
// the matching rule names an existing one). c.Mon must
// already hold the pre-rule default (SelMon) so a rule set with no
// matching monitor leaves it unchanged.
func ApplyRules(c *Client) {
	class, instance := wmClass(c.Win)
	if class == "" {
		class = "broken"
	}
	if instance == "" {
		instance = "broken"
	}

	c.Floating = false
	c.Tags = 0

	for _, r := range common.Config.Snapshot().Rules {
		if r.Title != "" && !strings.Contains(c.Name, r.Title) {
			continue
		}
		if r.Class != "" && !strings.Contains(class, r.Class) {
			continue
		}
		if r.Instance != "" && !strings.Contains(instance, r.Instance) {
			continue
		}

		c.Floating = r.Floating
		c.Tags |= r.Tags
		if m := monitorByNum(r.Monitor); m != nil {
			c.Mon = m
		}
	}

	mask := common.Config.TagMask()
	if c.Tags&mask != 0 {
		c.Tags &= mask
	} else {
		c.Tags = c.Mon.CurTags()
	}
}

func monitorByNum(num int) *Monitor {
	for _, m := range Mons {
		if m.Num == num {
			return m
		}
	}
	return nil
}
