// Package lessons holds the fixed lesson catalog and the one-question quiz
// shipped with the site. Pure constant data; progress tracking stores only
// the lesson ids.
package lessons

type Lesson struct {
	ID          string
	Title       string
	Description string
	Objectives  []string
}

var Catalog = []Lesson{
	{
		ID:          "1-1",
		Title:       "Lesson 1.1 — Atoms & Subatomic Particles",
		Description: "Intro to atoms, protons, neutrons, and electrons.",
		Objectives: []string{
			"Describe the basic structure of an atom",
			"Name the charges of subatomic particles",
		},
	},
	{
		ID:          "1-2",
		Title:       "Lesson 1.2 — Isotopes & Ions",
		Description: "Understand isotopes, ions, and how they affect properties.",
		Objectives: []string{
			"Explain isotopes & mass number",
			"Differentiate ions and neutral atoms",
		},
	},
	{
		ID:          "1-3",
		Title:       "Lesson 1.3 — Atomic Models",
		Description: "Explore Bohr, Rutherford, and modern atomic models.",
		Objectives: []string{
			"Compare historical atomic models",
			"Relate models to experimental evidence",
		},
	},
}

func Count() int { return len(Catalog) }

func ByID(id string) (Lesson, bool) {
	for _, l := range Catalog {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}

const quizAnswer = "proton"

// CheckAnswer grades the single quiz question.
func CheckAnswer(got string) bool { return got == quizAnswer }
