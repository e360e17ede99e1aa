package content

// Subjects returns the top-level subjects of the built-in Data Science
// taxonomy, in display order.
func Subjects() []string {
	out := make([]string, len(taxonomy))
	for i, s := range taxonomy {
		out[i] = s.name
	}
	return out
}

// Subfields returns the sub-fields for a subject, or nil if the subject
// is not in the taxonomy.
func Subfields(subject string) []string {
	for _, s := range taxonomy {
		if s.name == subject {
			return append([]string(nil), s.subfields...)
		}
	}
	return nil
}

type subjectEntry struct {
	name      string
	subfields []string
}

// taxonomy is the fixed two-level subject catalog offered alongside
// document upload and free-topic entry.
var taxonomy = []subjectEntry{
	{
		name: "Machine Learning",
		subfields: []string{
			"Supervised Learning",
			"Unsupervised Learning",
			"Semi-Supervised Learning",
			"Reinforcement Learning",
		},
	},
	{
		name: "Deep Learning",
		subfields: []string{
			"Artificial Neural Networks (ANNs)",
			"Convolutional Neural Networks (CNNs)",
			"Recurrent Neural Networks (RNNs)",
		},
	},
	{
		name: "Mathematics",
		subfields: []string{
			"Linear Algebra",
			"Calculus",
			"Matrices",
			"Vectors",
		},
	},
	{
		name: "Statistics",
		subfields: []string{
			"Descriptive",
			"Probability",
			"Inferential",
		},
	},
}
