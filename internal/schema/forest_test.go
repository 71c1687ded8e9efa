package schema

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func sequentialIDs(prefix string) IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

// sample:
//
//	a  String
//	b  Nested
//	  c  Nested
//	    x  Number
//	    y  Boolean
//	  d  Float
func sampleForest() Forest {
	return Forest{
		{ID: "a", Name: "a", Kind: String},
		{ID: "b", Name: "b", Kind: Nested, Children: Forest{
			{ID: "c", Name: "c", Kind: Nested, Children: Forest{
				{ID: "x", Name: "x", Kind: Number},
				{ID: "y", Name: "y", Kind: Boolean},
			}},
			{ID: "d", Name: "d", Kind: Float},
		}},
	}
}

var _ = Describe("Forest", func() {
	var restore IDFunc

	BeforeEach(func() {
		restore = newID
		newID = sequentialIDs("f")
	})

	AfterEach(func() {
		newID = restore
	})

	Describe("AddTopLevel", func() {
		It("should append a field with a fresh id", func() {
			forest := AddTopLevel(Forest{}, "age", Number, true)

			Expect(forest).To(HaveLen(1))
			Expect(forest[0]).To(Equal(Field{ID: "f1", Name: "age", Kind: Number, Required: true}))
		})

		It("should start Nested fields with an empty child list", func() {
			forest := AddTopLevel(Forest{}, "addr", Nested, false)

			Expect(forest[0].Children).NotTo(BeNil())
			Expect(forest[0].Children).To(BeEmpty())
		})

		It("should not share spare capacity between results", func() {
			base := make(Forest, 0, 4)
			left := AddTopLevel(base, "left", String, false)
			right := AddTopLevel(base, "right", String, false)

			Expect(left[0].Name).To(Equal("left"))
			Expect(right[0].Name).To(Equal("right"))
		})

		It("should ignore kinds outside the vocabulary", func() {
			forest := sampleForest()

			Expect(AddTopLevel(forest, "x", Kind(42), false)).To(Equal(sampleForest()))
			Expect(AddTopLevel(Forest{}, "x", Kind(42), false)).To(BeEmpty())
		})
	})

	Describe("NewField", func() {
		It("should replace a kind outside the vocabulary with an unset kind", func() {
			field := NewField("x", Kind(42), true)

			Expect(field.Kind).To(Equal(KindUnset))
			Expect(field.Children).To(BeNil())
			Expect(field.Required).To(BeTrue())
		})
	})

	Describe("AddChild", func() {
		It("should append an empty field under a nested parent at any depth", func() {
			forest := AddChild(sampleForest(), "c")

			c, ok := forest.Find("c")
			Expect(ok).To(BeTrue())
			Expect(c.Children).To(HaveLen(3))
			Expect(c.Children[2]).To(Equal(Field{ID: "f1"}))
		})

		It("should leave the input forest untouched", func() {
			original := sampleForest()
			_ = AddChild(original, "b")

			Expect(original).To(Equal(sampleForest()))
		})

		It("should be a no-op for an unknown parent", func() {
			forest := sampleForest()
			Expect(AddChild(forest, "missing")).To(Equal(forest))
		})

		It("should be a no-op for a non-nested parent", func() {
			forest := sampleForest()
			Expect(AddChild(forest, "a")).To(Equal(forest))
		})
	})

	Describe("Update", func() {
		It("should merge only the given attributes", func() {
			forest := Update(sampleForest(), "y", Changes{}.WithName("active"))

			y, _ := forest.Find("y")
			Expect(y).To(Equal(Field{ID: "y", Name: "active", Kind: Boolean}))
		})

		It("should keep the rest of the tree intact", func() {
			forest := Update(sampleForest(), "x", Changes{}.WithRequired(true))

			expected := sampleForest()
			expected[1].Children[0].Children[0].Required = true
			Expect(forest).To(Equal(expected))
		})

		It("should return an equal forest for an empty change set", func() {
			Expect(Update(sampleForest(), "x", Changes{})).To(Equal(sampleForest()))
		})

		It("should be a no-op for an unknown id", func() {
			forest := sampleForest()
			Expect(Update(forest, "missing", Changes{}.WithName("z"))).To(Equal(forest))
		})

		It("should drop children when leaving Nested", func() {
			forest := Update(sampleForest(), "b", Changes{}.WithKind(String))

			b, _ := forest.Find("b")
			Expect(b.Children).To(BeNil())
			Expect(forest.Contains("x")).To(BeFalse())
		})

		It("should keep children when the kind stays Nested", func() {
			forest := Update(sampleForest(), "b", Changes{}.WithKind(Nested))

			Expect(forest).To(Equal(sampleForest()))
		})

		It("should start an empty child list when entering Nested", func() {
			forest := Update(sampleForest(), "d", Changes{}.WithKind(Nested))

			d, _ := forest.Find("d")
			Expect(d.Children).To(Equal(Forest{}))
		})

		It("should ignore kinds outside the vocabulary", func() {
			forest := sampleForest()
			Expect(Update(forest, "a", Changes{}.WithKind(Kind(42)).WithName("z"))).To(Equal(forest))
		})
	})

	Describe("Delete", func() {
		It("should remove a field nested at depth two", func() {
			forest := Delete(sampleForest(), "x")

			Expect(forest.Contains("x")).To(BeFalse())
			Expect(forest.IDs()).To(Equal([]string{"a", "b", "c", "y", "d"}))
		})

		It("should remove a whole subtree", func() {
			forest := Delete(sampleForest(), "c")

			Expect(forest.IDs()).To(Equal([]string{"a", "b", "d"}))
		})

		It("should preserve the order of the remaining siblings", func() {
			forest := AddTopLevel(Forest{}, "A", String, false)
			forest = AddTopLevel(forest, "B", String, false)
			forest = AddTopLevel(forest, "C", String, false)

			forest = Delete(forest, forest[1].ID)

			Expect(forest).To(Equal(Forest{
				{ID: "f1", Name: "A", Kind: String},
				{ID: "f3", Name: "C", Kind: String},
			}))
		})

		It("should remove every occurrence of a duplicated id", func() {
			forest := Forest{
				{ID: "dup", Name: "top"},
				{ID: "n", Kind: Nested, Children: Forest{{ID: "dup", Name: "inner"}}},
			}

			Expect(Delete(forest, "dup")).To(Equal(Forest{
				{ID: "n", Kind: Nested, Children: Forest{}},
			}))
		})

		It("should leave the input forest untouched", func() {
			original := sampleForest()
			_ = Delete(original, "y")

			Expect(original).To(Equal(sampleForest()))
		})

		It("should be a no-op for an unknown id", func() {
			forest := sampleForest()
			Expect(Delete(forest, "missing")).To(Equal(forest))
		})
	})

	Describe("ids", func() {
		It("should stay unique across top-level and nested additions", func() {
			forest := Forest{}
			for i := 0; i < 5; i++ {
				forest = AddTopLevel(forest, fmt.Sprintf("n%d", i), Nested, false)
			}
			for _, parent := range forest.IDs() {
				forest = AddChild(forest, parent)
			}
			forest = Update(forest, forest[0].Children[0].ID, Changes{}.WithKind(Nested))
			forest = AddChild(forest, forest[0].Children[0].ID)

			ids := forest.IDs()
			Expect(ids).To(HaveLen(11))

			seen := map[string]bool{}
			for _, id := range ids {
				Expect(seen).NotTo(HaveKey(id))
				seen[id] = true
			}
		})
	})

	Describe("Walk", func() {
		It("should report depth and allow skipping children", func() {
			var visited []string
			sampleForest().Walk(func(field Field, depth int) bool {
				visited = append(visited, fmt.Sprintf("%s@%d", field.ID, depth))
				return field.ID != "c"
			})

			Expect(visited).To(Equal([]string{"a@0", "b@0", "c@1", "d@1"}))
		})

		It("should measure the forest", func() {
			Expect(sampleForest().Len()).To(Equal(6))
			Expect(sampleForest().Depth()).To(Equal(3))
			Expect(Forest{}.Depth()).To(Equal(0))
		})
	})
})
