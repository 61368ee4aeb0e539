package devtools

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"unicode/utf8"
)

var moodColors = map[string]string{
	"happy":   "#FFD700",
	"sad":     "#1E90FF",
	"angry":   "#DC143C",
	"calm":    "#3CB371",
	"excited": "#FFA500",
	"bored":   "#808080",
}

var alienLetters = map[rune]string{'a': "@", 'e': "∑", 'i': "!", 'o': "Ø", 'u': "∪"}

var procrastinationDelays = map[string]string{
	"homework":   "2 hours",
	"cleaning":   "30 minutes",
	"work email": "1 hour",
	"taxes":      "3 days",
	"laundry":    "at least 1 business day",
	"dishes":     "until you run out of spoons",
}

var dreamMeanings = map[string]string{
	"snake":         "You're afraid of betrayal.",
	"water":         "You seek emotional clarity.",
	"flying":        "You desire freedom.",
	"teeth falling": "You fear embarrassment.",
	"dog":           "It means you're a good person.",
	"cat":           "You are craving independence and a nap.",
}

var reverseMotivation = []string{
	"You're not gonna make it, unless you prove me wrong.",
	"Why even try? Unless you're different from the rest...",
	"No one expects you to succeed, surprise them.",
	"Success is probably not for you. Go ahead, prove it.",
	"Just give up. It's easier. Or is it?",
}

var forecasts = []string{"☀️ Sunny", "🌧️ Rainy", "⛈️ Stormy", "❄️ Snowy", "🌫️ Foggy", "🌪️ Tornado Warning!", "🌤️ Partly Cloudy"}

var nameVibes = []string{"a cool", "a mysterious", "a chaotic", "a peaceful", "a funny", "a genius"}

func MoodToColor(mood string) string {
	mood = strings.ToLower(mood)
	color, ok := moodColors[mood]
	if !ok {
		color = "#FFFFFF"
	}
	return fmt.Sprintf("The color for %s is %s", mood, color)
}

// AlienLanguage swaps vowels for look-alike symbols.
func AlienLanguage(text string) string {
	var b strings.Builder
	for _, r := range text {
		if s, ok := alienLetters[toLowerASCII(r)]; ok {
			b.WriteString(s)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func ProcrastinationTime(task string) string {
	task = strings.ToLower(task)
	delay, ok := procrastinationDelays[task]
	if !ok {
		delay = "an unknown, but significant, amount of time"
	}
	return fmt.Sprintf("Estimated delay for '%s': %s", task, delay)
}

func InterpretDream(object string) string {
	object = strings.ToLower(object)
	meaning, ok := dreamMeanings[object]
	if !ok {
		meaning = "That dream means you're awesome."
	}
	return fmt.Sprintf("Dreaming of a %s? %s", object, meaning)
}

func TranslatePetTalk(sound string) string {
	if strings.TrimSpace(sound) == "" {
		return "Please provide a pet sound."
	}
	lower := strings.ToLower(sound)
	switch {
	case strings.Contains(lower, "meow"):
		return "Translation: 'Feed me, human. And perhaps a head scratch.'"
	case strings.Contains(lower, "bark"), strings.Contains(lower, "woof"):
		return "Translation: 'Intruder alert! Or maybe a squirrel. It's a 50/50 chance.'"
	case strings.Contains(lower, "chirp"):
		return "Translation: 'It's a beautiful day for screaming!'"
	case strings.Contains(lower, "purr"):
		return "Translation: 'This is acceptable. Do not stop.'"
	}
	return "This sound translates to: 'I am a mysterious creature with unknowable thoughts.'"
}

func TranslateKeyboardSmash(smash string) string {
	if strings.TrimSpace(smash) == "" {
		return "Please provide a keyboard smash."
	}
	return fmt.Sprintf("Translation: 'Urgent chaos approaching!' (Detected %d units of energy)", utf8.RuneCountInString(smash))
}

func NameVibe(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Please provide a name."
	}
	return fmt.Sprintf("%s gives off %s vibe!", name, nameVibes[rand.IntN(len(nameVibes))])
}

func ReverseMotivation(string) string {
	return reverseMotivation[rand.IntN(len(reverseMotivation))]
}

func EmojiWeather(string) string {
	return "Today's forecast: " + forecasts[rand.IntN(len(forecasts))]
}

// Gadgets maps the public gadget names to their implementations.
var Gadgets = map[string]func(string) string{
	"mood-color":         MoodToColor,
	"alien":              AlienLanguage,
	"procrastination":    ProcrastinationTime,
	"dream":              InterpretDream,
	"pet-talk":           TranslatePetTalk,
	"keyboard-smash":     TranslateKeyboardSmash,
	"name-vibe":          NameVibe,
	"reverse-motivation": ReverseMotivation,
	"emoji-weather":      EmojiWeather,
}

// GadgetNames returns the registered gadget names in sorted order.
func GadgetNames() []string {
	names := make([]string, 0, len(Gadgets))
	for name := range Gadgets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
