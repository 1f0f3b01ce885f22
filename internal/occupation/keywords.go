package occupation

// DefaultColumn is the survey column holding the occupation answer.
const DefaultColumn = "DE07_01"

// Keyword lists are matched against folded (lower-case) answers. Order within a
// list does not change the result; order of the lists does.
var (
	defaultSentinels = []string{"-", "/", "1"}

	studentKeywords = []string{
		"student",
		"studium",
		"studier",
	}

	employedKeywords = []string{
		"angestellt",
		"vollzeit",
		"teilzeit",
		"werkstudent",
		"minijob",
		"arbeiten",
		"kaufmann",
		"kauffrau",
		"mitarbeit",
		"assistent",
		"referent",
		"manager",
		"erzieher",
		"lehrer",
		"pfleger",
		"therapeut",
		"buchhalter",
		"controller",
		"informatiker",
		"chemikant",
		"dachdecker",
		"soldat",
		"psycholog",
		"sozialarbeit",
		"wissenschaft",
		"sachbearbeit",
		"teamleitung",
		"projekt",
		"hotellerie",
		"immobilien",
		"shipping",
		"ingeneur",
		"kinderbetreuung",
		"postzusteller",
		"büto",
		"sozpäd",
		"adult",
		"assistenz",
		"studienrätin",
		"psycholgin",
		"technischer",
		"selbst",
		"freelance",
		"privatier",
		"beamt",
	}

	otherKeywords = []string{
		"arbeitslos",
		"erwerbsminderung",
		"krank",
		"behinderten werkstatt",
		"ausbildung",
		"rente",
		"früh",
		"schule",
	}
)

// DefaultSentinels returns the built-in "no answer" values, excluding the
// column name which Rules adds separately.
func DefaultSentinels() []string { return clone(defaultSentinels) }

// DefaultStudentKeywords returns the built-in student keyword list.
func DefaultStudentKeywords() []string { return clone(studentKeywords) }

// DefaultEmployedKeywords returns the built-in employment keyword list.
func DefaultEmployedKeywords() []string { return clone(employedKeywords) }

// DefaultOtherKeywords returns the built-in non-employment keyword list.
func DefaultOtherKeywords() []string { return clone(otherKeywords) }

func clone(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}
