package generator

// Prompt is shown while no version is selected.
const Prompt = "Click on a UUID version above to generate random UUIDs and see the description."

var descriptions = map[Version]string{
	V1: "UUID v1 is based on the current timestamp and MAC address. We simulate it by prefixing v1- to UUID v4.",
	V2: "UUID v2 is used for DCE Security (domain-based). It's not widely used and here we simulate it using shortened UUID v4.",
	V3: "UUID v3 is name-based and uses MD5 hashing. We simulate it using a truncated v4 UUID with a v3- prefix.",
	V4: "UUID v4 is random-based and the most commonly used version. It ensures uniqueness without coordination.",
}

// Describe returns the fixed description for v, or Prompt for anything else.
func Describe(v Version) string {
	if d, ok := descriptions[v]; ok {
		return d
	}
	return Prompt
}
