package ctl

const maxRecords = 1 << 28

// buildRecords lays out the data file: time is the outer loop, variables
// in declaration order the middle, and levels the inner one. Each 2D
// field gets the next record index.
func buildRecords(c *Ctl) []Record {
	assertf(c.TDef != nil, ErrMissingAxis, "tdef")
	for _, v := range c.Vars {
		if v.Levels == 0 {
			continue
		}
		assertf(c.ZDef != nil, ErrMissingAxis, "zdef, needed by %s", v.Name)
		assertf(v.Levels <= len(c.ZDef.Values), ErrMissingAxis,
			"%s has %d levels, zdef has %d", v.Name, v.Levels, len(c.ZDef.Values))
	}

	n := recordCount(c)
	assertf(n <= maxRecords, ErrMalformedDirective, "record index of %d records exceeds %d", n, maxRecords)
	records := make([]Record, 0, n)
	index := 0
	for _, validTime := range c.TDef.Values {
		for _, v := range c.Vars {
			if v.Levels == 0 {
				records = append(records, Record{
					Name:        v.Name,
					LevelType:   Single,
					ValidTime:   validTime,
					Units:       v.Units,
					Description: v.Description,
					Index:       index,
				})
				index++
				continue
			}
			for levelIndex := 0; levelIndex < v.Levels; levelIndex++ {
				records = append(records, Record{
					Name:        v.Name,
					LevelType:   Multi,
					Level:       c.ZDef.Values[levelIndex],
					LevelIndex:  levelIndex,
					ValidTime:   validTime,
					Units:       v.Units,
					Description: v.Description,
					Index:       index,
				})
				index++
			}
		}
	}
	logger.Debugf("built %d records", len(records))
	return records
}

// A surface field still takes one record.
func levelsInFile(v Variable) int {
	if v.Levels == 0 {
		return 1
	}
	return v.Levels
}

func recordCount(c *Ctl) int {
	perStep := 0
	for _, v := range c.Vars {
		perStep += levelsInFile(v)
	}
	return perStep * c.TDef.Count
}
