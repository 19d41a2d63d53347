package password

// wordList is the MEMORABLE mode dictionary. Every entry is lowercase ASCII.
var wordList = [...]string{
	"apple", "river", "sky", "blue", "stone", "music", "happy", "light", "brave", "swift",
	"ocean", "forest", "mountain", "cloud", "star", "dream", "coffee", "book", "peace", "smile",
	"tiger", "eagle", "lion", "wolf", "bear", "hawk", "shark", "whale", "cobra", "viper",
	"mars", "venus", "saturn", "pluto", "earth", "moon", "solar", "lunar", "comet", "orbit",
}

// Words returns a copy of the MEMORABLE mode dictionary.
func Words() []string {
	out := make([]string, len(wordList))
	copy(out, wordList[:])
	return out
}
