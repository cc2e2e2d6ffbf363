package state

import (
	"fmt"
	"regexp"
)

var namePattern = regexp.MustCompile("^[0-9A-Za-z._-]+$")

func NodeIdValidator(id NodeId) error {
	if !namePattern.MatchString(string(id)) {
		return fmt.Errorf("%q is not a valid node id, must match pattern %s", id, namePattern.String())
	}
	if len(id) > 100 {
		return fmt.Errorf("len(%q) = %d > 100 is too long", id, len(id))
	}
	return nil
}

func LinkValidator(l Link) error {
	if err := NodeIdValidator(l.A); err != nil {
		return err
	}
	if err := NodeIdValidator(l.B); err != nil {
		return err
	}
	if l.A == l.B {
		return fmt.Errorf("link %s-%s connects a node to itself", l.A, l.B)
	}
	if l.Cost < 0 {
		return fmt.Errorf("link %s-%s has negative cost %d", l.A, l.B, l.Cost)
	}
	return nil
}

func ChangeValidator(c Change) error {
	if err := NodeIdValidator(c.A); err != nil {
		return err
	}
	if err := NodeIdValidator(c.B); err != nil {
		return err
	}
	if c.A == c.B {
		return fmt.Errorf("change %s-%s connects a node to itself", c.A, c.B)
	}
	if c.Cost < 0 && !c.IsRemoval() {
		return fmt.Errorf("change %s-%s has negative cost %d, only %d removes a link", c.A, c.B, c.Cost, RemoveLinkCost)
	}
	return nil
}

func ScenarioValidator(sc *Scenario) error {
	if _, err := ParseProtocol(string(sc.Protocol)); err != nil {
		return err
	}
	for _, l := range sc.Links {
		if err := LinkValidator(l); err != nil {
			return err
		}
	}
	for _, m := range sc.Messages {
		if err := NodeIdValidator(m.Source); err != nil {
			return err
		}
		if err := NodeIdValidator(m.Dest); err != nil {
			return err
		}
	}
	for _, c := range sc.Changes {
		if err := ChangeValidator(c); err != nil {
			return err
		}
	}
	return nil
}
