package corpus

import "practicecoach/internal/model"

var technicalQuestions = []model.Question{
	// DBMS
	{
		ID: "tech-dbms-001", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyEasy, Subject: model.SubjectDBMS,
		Text:            "What is a primary key and why is it important?",
		SkillsEvaluated: []string{"Database fundamentals", "Explanation"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 70, KeyPoints: []string{
			"Uniquely identifies a row", "Cannot be null", "Used by foreign keys",
		}},
	},
	{
		ID: "tech-dbms-005", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyEasy, Subject: model.SubjectDBMS,
		Text:            "What is the difference between DELETE, TRUNCATE and DROP?",
		SkillsEvaluated: []string{"SQL", "Precision"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 70, KeyPoints: []string{
			"DELETE removes rows and can filter", "TRUNCATE removes all rows quickly", "DROP removes the table", "Rollback behaviour",
		}},
	},
	{
		ID: "tech-dbms-002", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyMedium, Subject: model.SubjectDBMS,
		Text:            "Explain normalization and the first three normal forms.",
		SkillsEvaluated: []string{"Schema design", "Explanation", "Examples"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 150, KeyPoints: []string{
			"Purpose: reduce redundancy", "1NF atomic values", "2NF no partial dependency", "3NF no transitive dependency",
		}},
	},
	{
		ID: "tech-dbms-006", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyMedium, Subject: model.SubjectDBMS,
		Text:            "Explain the different types of SQL joins with an example.",
		SkillsEvaluated: []string{"SQL", "Explanation"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 110, KeyPoints: []string{
			"Inner join", "Left and right outer joins", "Full outer join", "Example tables",
		}},
	},
	{
		ID: "tech-dbms-003", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyHard, Subject: model.SubjectDBMS,
		Text:            "What are ACID properties and how does a database guarantee isolation?",
		SkillsEvaluated: []string{"Transactions", "Concurrency control"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 160, KeyPoints: []string{
			"Atomicity", "Consistency", "Isolation", "Durability", "Locking or MVCC",
		}},
	},
	{
		ID: "tech-dbms-007", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyHard, Subject: model.SubjectDBMS,
		Text:            "What is a deadlock in a database and how can it be prevented?",
		SkillsEvaluated: []string{"Concurrency", "Problem solving"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 120, KeyPoints: []string{
			"Definition of deadlock", "Lock ordering", "Timeouts and detection", "Victim rollback",
		}},
	},
	{
		ID: "tech-dbms-004", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyAdvanced, Subject: model.SubjectDBMS,
		Text:            "How would you choose between a B-tree index and a hash index?",
		SkillsEvaluated: []string{"Indexing", "Trade-off analysis"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 140, KeyPoints: []string{
			"B-tree supports range queries", "Hash supports equality lookups", "Write overhead", "Storage cost",
		}},
	},
	{
		ID: "tech-dbms-008", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyAdvanced, Subject: model.SubjectDBMS,
		Text:            "Compare optimistic and pessimistic concurrency control.",
		SkillsEvaluated: []string{"Concurrency", "Trade-off analysis"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 140, KeyPoints: []string{
			"Pessimistic locks up front", "Optimistic validates at commit", "Contention determines the choice", "Example use case",
		}},
	},
	// C
	{
		ID: "tech-c-001", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyEasy, Subject: model.SubjectC,
		Text:            "What is the difference between a pointer and an array in C?",
		SkillsEvaluated: []string{"C fundamentals", "Memory model"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 90, KeyPoints: []string{
			"Array is a fixed block of memory", "Pointer stores an address", "Array decays to pointer", "sizeof behaves differently",
		}},
	},
	{
		ID: "tech-c-005", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyEasy, Subject: model.SubjectC,
		Text:            "What is the difference between a local and a static variable in C?",
		SkillsEvaluated: []string{"C fundamentals", "Precision"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 70, KeyPoints: []string{
			"Storage duration", "Scope", "Initialisation behaviour",
		}},
	},
	{
		ID: "tech-c-002", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyMedium, Subject: model.SubjectC,
		Text:            "Explain malloc, calloc and free, and what a memory leak is.",
		SkillsEvaluated: []string{"Dynamic memory", "Resource management"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 120, KeyPoints: []string{
			"malloc allocates uninitialised memory", "calloc zero-initialises", "free releases memory", "Leak is unreleased memory",
		}},
	},
	{
		ID: "tech-c-006", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyMedium, Subject: model.SubjectC,
		Text:            "Explain pass by value and how pointers allow a function to modify its arguments.",
		SkillsEvaluated: []string{"Pointers", "Explanation"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 100, KeyPoints: []string{
			"C passes by value", "Passing an address", "Dereferencing to modify", "Example swap function",
		}},
	},
	{
		ID: "tech-c-003", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyHard, Subject: model.SubjectC,
		Text:            "What is undefined behaviour in C? Give three examples.",
		SkillsEvaluated: []string{"Language semantics", "Defensive coding"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 130, KeyPoints: []string{
			"Definition of undefined behaviour", "Out-of-bounds access", "Signed overflow", "Use after free",
		}},
	},
	{
		ID: "tech-c-007", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyHard, Subject: model.SubjectC,
		Text:            "How does a struct's memory layout depend on padding and alignment?",
		SkillsEvaluated: []string{"Memory layout", "Systems thinking"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 120, KeyPoints: []string{
			"Alignment requirements", "Padding between members", "Ordering members to save space", "sizeof implications",
		}},
	},
	{
		ID: "tech-c-004", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyAdvanced, Subject: model.SubjectC,
		Text:            "How does the volatile keyword affect compiler optimisation?",
		SkillsEvaluated: []string{"Compilers", "Embedded systems"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 110, KeyPoints: []string{
			"Prevents caching in registers", "Used for hardware registers", "Not a synchronisation primitive",
		}},
	},
	{
		ID: "tech-c-008", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyAdvanced, Subject: model.SubjectC,
		Text:            "Explain how function pointers can implement callbacks in C.",
		SkillsEvaluated: []string{"Pointers", "Design"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 130, KeyPoints: []string{
			"Function pointer syntax", "Passing as an argument", "Example such as qsort", "Type safety concerns",
		}},
	},
	// OOPs
	{
		ID: "tech-oops-001", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyEasy, Subject: model.SubjectOOPs,
		Text:            "What are the four pillars of object-oriented programming?",
		SkillsEvaluated: []string{"OOP fundamentals", "Explanation"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 100, KeyPoints: []string{
			"Encapsulation", "Abstraction", "Inheritance", "Polymorphism",
		}},
	},
	{
		ID: "tech-oops-004", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyEasy, Subject: model.SubjectOOPs,
		Text:            "What is the difference between a class and an object?",
		SkillsEvaluated: []string{"OOP fundamentals", "Clarity"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 60, KeyPoints: []string{
			"Class is a blueprint", "Object is an instance", "Example",
		}},
	},
	{
		ID: "tech-oops-002", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyMedium, Subject: model.SubjectOOPs,
		Text:            "Compare method overloading and method overriding.",
		SkillsEvaluated: []string{"Polymorphism", "Examples"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 110, KeyPoints: []string{
			"Overloading is compile-time", "Overriding is runtime", "Signature rules", "Example of each",
		}},
	},
	{
		ID: "tech-oops-005", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyMedium, Subject: model.SubjectOOPs,
		Text:            "What is an abstract class and how does it differ from an interface?",
		SkillsEvaluated: []string{"Abstraction", "Comparison"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 110, KeyPoints: []string{
			"Abstract class can hold state", "Interface defines a contract", "Multiple inheritance of interfaces", "When to use each",
		}},
	},
	{
		ID: "tech-oops-003", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyHard, Subject: model.SubjectOOPs,
		Text:            "When would you prefer composition over inheritance?",
		SkillsEvaluated: []string{"Design", "Trade-off analysis"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 130, KeyPoints: []string{
			"Has-a versus is-a", "Looser coupling", "Fragile base class problem", "Concrete example",
		}},
	},
	{
		ID: "tech-oops-006", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyHard, Subject: model.SubjectOOPs,
		Text:            "Explain the SOLID principles with a short example of one.",
		SkillsEvaluated: []string{"Design principles", "Explanation"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 150, KeyPoints: []string{
			"Single responsibility", "Open closed", "Liskov substitution", "Interface segregation and dependency inversion",
		}},
	},
	{
		ID: "tech-oops-007", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyAdvanced, Subject: model.SubjectOOPs,
		Text:            "How would you apply the strategy pattern to remove a large switch statement?",
		SkillsEvaluated: []string{"Design patterns", "Refactoring"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 140, KeyPoints: []string{
			"Define a strategy interface", "One class per behaviour", "Select strategy at runtime", "Benefits for testing and extension",
		}},
	},
	{
		ID: "tech-oops-008", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyAdvanced, Subject: model.SubjectOOPs,
		Text:            "Explain the diamond problem and how different languages resolve it.",
		SkillsEvaluated: []string{"Inheritance", "Language comparison"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 140, KeyPoints: []string{
			"Ambiguous inherited member", "Virtual inheritance in C++", "Interfaces in Java", "Method resolution order",
		}},
	},
	// DS
	{
		ID: "tech-ds-001", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyEasy, Subject: model.SubjectDS,
		Text:            "What is the difference between a stack and a queue?",
		SkillsEvaluated: []string{"Data structures", "Explanation"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 80, KeyPoints: []string{
			"Stack is LIFO", "Queue is FIFO", "Typical use cases",
		}},
	},
	{
		ID: "tech-ds-005", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyEasy, Subject: model.SubjectDS,
		Text:            "What is a linked list and when is it preferable to an array?",
		SkillsEvaluated: []string{"Data structures", "Trade-off analysis"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 80, KeyPoints: []string{
			"Nodes with pointers", "Cheap insertion and deletion", "No random access", "Memory overhead",
		}},
	},
	{
		ID: "tech-ds-002", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyMedium, Subject: model.SubjectDS,
		Text:            "How does a hash table handle collisions?",
		SkillsEvaluated: []string{"Hashing", "Complexity analysis"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 120, KeyPoints: []string{
			"Separate chaining", "Open addressing", "Load factor and resizing", "Average O(1) lookup",
		}},
	},
	{
		ID: "tech-ds-006", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyMedium, Subject: model.SubjectDS,
		Text:            "Explain the difference between breadth-first and depth-first search.",
		SkillsEvaluated: []string{"Graphs", "Explanation"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 110, KeyPoints: []string{
			"BFS uses a queue", "DFS uses a stack or recursion", "Shortest path in unweighted graphs", "Memory usage",
		}},
	},
	{
		ID: "tech-ds-003", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyHard, Subject: model.SubjectDS,
		Text:            "Explain how a balanced binary search tree keeps operations logarithmic.",
		SkillsEvaluated: []string{"Trees", "Complexity analysis"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 150, KeyPoints: []string{
			"Height bound", "Rotations", "AVL or red-black invariants", "O(log n) search, insert, delete",
		}},
	},
	{
		ID: "tech-ds-007", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyHard, Subject: model.SubjectDS,
		Text:            "How does a heap support a priority queue efficiently?",
		SkillsEvaluated: []string{"Trees", "Complexity analysis"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 120, KeyPoints: []string{
			"Heap property", "Insert with sift up", "Extract with sift down", "Logarithmic operations",
		}},
	},
	{
		ID: "tech-ds-004", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyAdvanced, Subject: model.SubjectDS,
		Text:            "Design an LRU cache with O(1) get and put.",
		SkillsEvaluated: []string{"Design", "Data structures", "Complexity analysis"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 160, KeyPoints: []string{
			"Hash map for lookup", "Doubly linked list for recency", "Eviction of the tail", "Update on access",
		}},
	},
	{
		ID: "tech-ds-008", Type: model.QuestionTypeTechnical, Difficulty: model.DifficultyAdvanced, Subject: model.SubjectDS,
		Text:            "Explain how a trie works and where it is useful.",
		SkillsEvaluated: []string{"Trees", "Applied design"},
		Metadata: model.QuestionMetadata{ExpectedAnswerLength: 130, KeyPoints: []string{
			"Nodes per character", "Prefix sharing", "Autocomplete use case", "Memory trade-off",
		}},
	},
}
