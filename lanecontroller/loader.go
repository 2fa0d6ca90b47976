package lanecontroller

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// MaxTiers is the most tiers a table may hold; the level is shown as one digit
const MaxTiers = 9

// LoadTiersFromFile loads a speed table from a tier file.
// Each line holds a collision-free tick threshold and a period in
// milliseconds, e.g. "10 750". Blank lines and lines starting with '#' are skipped.
func LoadTiersFromFile(filename string) ([]Tier, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open tier file: %w", err)
	}
	defer file.Close()

	return ParseTiers(file)
}

// ParseTiers reads a speed table in the tier file format
func ParseTiers(r io.Reader) ([]Tier, error) {
	var tiers []Tier

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("invalid tier line '%s': want threshold and period", line)
		}
		threshold, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid tier threshold '%s': %w", line, err)
		}
		periodMs, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("invalid tier period '%s': %w", line, err)
		}

		tiers = append(tiers, Tier{
			Threshold: uint32(threshold),
			Level:     len(tiers) + 1,
			Period:    time.Duration(periodMs) * time.Millisecond,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading tier file: %w", err)
	}
	if err := ValidateTiers(tiers); err != nil {
		return nil, err
	}
	return tiers, nil
}

// ValidateTiers checks that a table starts at 0, climbs strictly and has positive periods
func ValidateTiers(tiers []Tier) error {
	if len(tiers) == 0 {
		return errors.New("tier table is empty")
	}
	if len(tiers) > MaxTiers {
		return fmt.Errorf("tier table has %d tiers, at most %d allowed", len(tiers), MaxTiers)
	}
	if tiers[0].Threshold != 0 {
		return fmt.Errorf("first tier threshold is %d, want 0", tiers[0].Threshold)
	}
	for i, t := range tiers {
		if t.Period <= 0 {
			return fmt.Errorf("tier %d has non-positive period %v", t.Level, t.Period)
		}
		if i > 0 && t.Threshold <= tiers[i-1].Threshold {
			return fmt.Errorf("tier %d threshold %d does not exceed %d", t.Level, t.Threshold, tiers[i-1].Threshold)
		}
	}
	return nil
}
