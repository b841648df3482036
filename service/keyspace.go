package service

import "strings"

// keyspace composes and parses the storage keys of the presence store.
// Entries live at "<entryPrefix>:<group>:<id>", the group index is the set at groupsKey.
// The id is everything after the last colon, so group names may themselves contain colons.
type keyspace struct {
	entryPrefix string
	groupsKey   string
}

func (k keyspace) entryKey(group, id string) string {
	return k.entryPrefix + ":" + group + ":" + id
}

// groupPattern matches every entry of group, and also entries of groups that extend it
// with ":..." ("a" matches "a:b"). Callers filter with belongsTo.
func (k keyspace) groupPattern(group string) string {
	return escapeGlob(k.entryPrefix) + ":" + escapeGlob(group) + ":*"
}

func (k keyspace) allEntriesPattern() string {
	return escapeGlob(k.entryPrefix) + ":*"
}

// parseEntryKey splits an entry key into its group and id.
func (k keyspace) parseEntryKey(key string) (group, id string, ok bool) {
	rest, found := strings.CutPrefix(key, k.entryPrefix+":")
	if !found {
		return "", "", false
	}
	i := strings.LastIndexByte(rest, ':')
	if i <= 0 || i == len(rest)-1 {
		return "", "", false
	}
	return rest[:i], rest[i+1:], true
}

func (k keyspace) belongsTo(key, group string) bool {
	g, _, ok := k.parseEntryKey(key)
	return ok && g == group
}

// escapeGlob quotes the characters redis treats specially in KEYS patterns.
func escapeGlob(s string) string {
	if !strings.ContainsAny(s, `*?[]\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
