package catalog

var questions = map[string][]Question{
	"frontend-dev": {
		{
			ID:          "fe-1",
			RoleID:      "frontend-dev",
			Text:        "What's the difference between let, const, and var in JavaScript?",
			Type:        QuestionText,
			Explanation: "var is function-scoped and can be redeclared, while let and const are block-scoped. const variables cannot be reassigned after declaration, but let variables can be.",
		},
		{
			ID:          "fe-2",
			RoleID:      "frontend-dev",
			Text:        "How would you use CSS to center a div both horizontally and vertically?",
			Type:        QuestionText,
			Explanation: "You can use flexbox (display: flex; justify-content: center; align-items: center;) or CSS Grid, or a combination of position: absolute with transform.",
		},
		{
			ID:          "fe-3",
			RoleID:      "frontend-dev",
			Text:        "Write a JavaScript function that returns the sum of all numbers in an array.",
			Type:        QuestionCode,
			Explanation: "You can use the reduce method to iterate over the array and sum the values, or a for loop to accomplish this task.",
		},
		{
			ID:     "fe-4",
			RoleID: "frontend-dev",
			Text:   "Which of these is not a valid way to declare a function in JavaScript?",
			Type:   QuestionMultipleChoice,
			Options: []string{
				"function myFunc() {}",
				"const myFunc = function() {}",
				"const myFunc = () => {}",
				"function = myFunc() {}",
			},
			CorrectAnswer: "function = myFunc() {}",
			Explanation:   "The correct syntax for function declarations in JavaScript are: traditional function declaration (function myFunc() {}), function expression (const myFunc = function() {}), and arrow function (const myFunc = () => {}).",
		},
	},
	"backend-dev": {
		{
			ID:          "be-1",
			RoleID:      "backend-dev",
			Text:        "What are the key differences between REST and GraphQL APIs?",
			Type:        QuestionText,
			Explanation: "REST uses multiple endpoints with fixed data structures, while GraphQL uses a single endpoint where clients can specify exactly what data they need. REST can require multiple requests for complex data, while GraphQL can retrieve all needed data in a single request.",
		},
		{
			ID:          "be-2",
			RoleID:      "backend-dev",
			Text:        "Explain the concept of database normalization and when you might want to denormalize.",
			Type:        QuestionText,
			Explanation: "Normalization organizes data to reduce redundancy and improve data integrity by dividing large tables into smaller ones and defining relationships. Denormalization might be preferred for read-heavy applications where query performance is more important than write performance.",
		},
		{
			ID:          "be-3",
			RoleID:      "backend-dev",
			Text:        "Write a function that checks if a string is a valid JSON.",
			Type:        QuestionCode,
			Explanation: "You can use JSON.parse inside a try/catch block to check if a string is valid JSON.",
		},
	},
	"qa-specialist": {
		{
			ID:          "qa-1",
			RoleID:      "qa-specialist",
			Text:        "What's the difference between black box and white box testing?",
			Type:        QuestionText,
			Explanation: "Black box testing examines functionality without knowing the internal code structure, while white box testing involves knowledge of the internal logic and code structure to design tests.",
		},
		{
			ID:          "qa-2",
			RoleID:      "qa-specialist",
			Text:        "Explain the concept of test coverage and its importance.",
			Type:        QuestionText,
			Explanation: "Test coverage measures the amount of code that is being tested by automated tests, helping identify untested parts of an application. High coverage doesn't guarantee quality but low coverage definitely indicates insufficient testing.",
		},
	},
	"data-specialist": {
		{
			ID:          "ds-1",
			RoleID:      "data-specialist",
			Text:        "What's the difference between a LEFT JOIN and an INNER JOIN in SQL?",
			Type:        QuestionText,
			Explanation: "An INNER JOIN returns only the matching rows between tables. A LEFT JOIN returns all rows from the left table and matching rows from the right table, with NULL values for non-matches.",
		},
		{
			ID:          "ds-2",
			RoleID:      "data-specialist",
			Text:        "Explain the concept of overfitting in machine learning models.",
			Type:        QuestionText,
			Explanation: "Overfitting occurs when a model learns the training data too well, including noise and outliers, causing it to perform poorly on new, unseen data. It happens when a model is too complex relative to the amount and noisiness of the training data.",
		},
	},
}
