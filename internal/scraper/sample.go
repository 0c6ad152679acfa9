package scraper

import (
	types "github.com/boilerplan/boilerplan-backend/internal/domain"
)

func fptr(v float64) *float64 { return &v }

type sampleCourse struct {
	code             string
	name             string
	credits          int
	level            int
	avgGPA           float64
	difficulty       float64
	workload         float64
	reviews          int
	prereqs          []string
	coreqs           []string
	semesters        []string
	careerTags       []string
	interestTags     []string
	majorRequirement bool
	techElective     bool
	labCredit        bool
	category         string
	description      string
}

var sampleCatalog = []sampleCourse{
	{code: "ECE 20001", name: "Electrical Engineering Fundamentals I", credits: 3, level: 20000,
		avgGPA: 2.85, difficulty: 3.2, workload: 12, reviews: 156,
		prereqs: []string{"PHYS 17200", "MA 26100"}, coreqs: []string{"ECE 20007"},
		semesters: []string{"Fall", "Spring", "Summer"},
		careerTags: []string{"hardware", "embedded", "signals"}, interestTags: []string{"circuits", "physics", "analog"},
		majorRequirement: true, category: "core",
		description: "Circuit elements, Kirchhoff's laws, nodal and mesh analysis, Thevenin and Norton equivalents, operational amplifiers."},
	{code: "ECE 20002", name: "Electrical Engineering Fundamentals II", credits: 3, level: 20000,
		avgGPA: 2.78, difficulty: 3.4, workload: 13, reviews: 142,
		prereqs: []string{"ECE 20001"}, coreqs: []string{"ECE 20008"},
		semesters: []string{"Fall", "Spring", "Summer"},
		careerTags: []string{"hardware", "signals", "power"}, interestTags: []string{"circuits", "analog", "physics"},
		majorRequirement: true, category: "core",
		description: "AC circuit analysis, frequency response, resonance, and operational amplifier applications."},
	{code: "ECE 20007", name: "Electrical Engineering Fundamentals Lab I", credits: 1, level: 20000,
		avgGPA: 3.45, difficulty: 2.2, workload: 4, reviews: 98,
		coreqs:    []string{"ECE 20001"},
		semesters: []string{"Fall", "Spring", "Summer"},
		careerTags: []string{"hardware", "embedded"}, interestTags: []string{"circuits", "hands-on"},
		majorRequirement: true, labCredit: true, category: "core",
		description: "Laboratory experiments in basic electrical circuits and measurement technique."},
	{code: "ECE 20875", name: "Python for Data Science", credits: 3, level: 20000,
		avgGPA: 3.25, difficulty: 2.5, workload: 10, reviews: 203,
		semesters: []string{"Fall", "Spring", "Summer"},
		careerTags: []string{"software", "ml"}, interestTags: []string{"programming", "data", "math"},
		techElective: true, category: "breadth",
		description: "Python programming with applications in data analysis and introductory machine learning."},
	{code: "ECE 26400", name: "Advanced C Programming", credits: 3, level: 26000,
		avgGPA: 2.92, difficulty: 3.5, workload: 14, reviews: 178,
		prereqs:   []string{"CS 15900"},
		semesters: []string{"Fall", "Spring", "Summer"},
		careerTags: []string{"software", "embedded"}, interestTags: []string{"programming", "systems"},
		majorRequirement: true, category: "core",
		description: "Memory management, data structures, and systems programming in C."},
	{code: "ECE 27000", name: "Introduction to Digital System Design", credits: 4, level: 27000,
		avgGPA: 2.95, difficulty: 3.3, workload: 14, reviews: 165,
		semesters: []string{"Fall", "Spring", "Summer"},
		careerTags: []string{"hardware", "embedded", "vlsi"}, interestTags: []string{"digital", "circuits", "fpga"},
		majorRequirement: true, labCredit: true, category: "core",
		description: "Combinational and sequential logic design with FPGA implementation."},
	{code: "ECE 29401", name: "Junior Seminar", credits: 0, level: 29000,
		avgGPA: 3.85, difficulty: 1.2, workload: 2, reviews: 245,
		semesters: []string{"Fall", "Spring"},
		careerTags: []string{"software", "hardware", "ml"}, interestTags: []string{"career", "communication"},
		majorRequirement: true, category: "core",
		description: "Career development and introduction to ECE specializations."},
	{code: "ECE 30100", name: "Signals and Systems", credits: 3, level: 30000,
		avgGPA: 2.58, difficulty: 4.2, workload: 15, reviews: 189,
		prereqs:   []string{"ECE 20002", "MA 26600"},
		semesters: []string{"Fall", "Spring", "Summer"},
		careerTags: []string{"signals", "communications", "ml"}, interestTags: []string{"math", "dsp", "theory"},
		majorRequirement: true, category: "core",
		description: "Continuous and discrete-time signals and systems. Fourier series, Fourier transform, Laplace transform."},
	{code: "ECE 30200", name: "Probabilistic Methods in ECE", credits: 3, level: 30000,
		avgGPA: 2.72, difficulty: 3.8, workload: 13, reviews: 134,
		prereqs:   []string{"MA 26500"},
		semesters: []string{"Fall", "Spring"},
		careerTags: []string{"ml", "signals", "communications"}, interestTags: []string{"math", "statistics", "theory"},
		majorRequirement: true, category: "core",
		description: "Probability theory, random variables, and stochastic processes with engineering applications."},
	{code: "ECE 30411", name: "Electromagnetics I", credits: 3, level: 30000,
		avgGPA: 2.65, difficulty: 4.0, workload: 14, reviews: 112,
		prereqs:   []string{"PHYS 27200", "MA 26200"},
		semesters: []string{"Fall", "Spring"},
		careerTags: []string{"hardware", "communications", "rf"}, interestTags: []string{"physics", "math", "theory"},
		majorRequirement: true, category: "core",
		description: "Electrostatics, magnetostatics, and time-varying electromagnetic fields. Maxwell's equations."},
	{code: "ECE 36200", name: "Microprocessor Systems and Interfacing", credits: 4, level: 36000,
		avgGPA: 2.88, difficulty: 3.6, workload: 15, reviews: 145,
		prereqs:   []string{"ECE 27000", "ECE 26400"},
		semesters: []string{"Fall", "Spring", "Summer"},
		careerTags: []string{"embedded", "hardware", "software"}, interestTags: []string{"architecture", "programming", "systems"},
		majorRequirement: true, labCredit: true, category: "core",
		description: "Microprocessor architecture, assembly programming, and hardware interfacing."},
	{code: "ECE 36800", name: "Data Structures", credits: 3, level: 36000,
		avgGPA: 2.95, difficulty: 3.4, workload: 12, reviews: 167,
		prereqs:   []string{"ECE 26400"},
		semesters: []string{"Fall", "Spring", "Summer"},
		careerTags: []string{"software"}, interestTags: []string{"programming", "algorithms"},
		majorRequirement: true, category: "core",
		description: "Fundamental data structures and algorithms. Trees, graphs, sorting, searching."},
	{code: "ECE 39401", name: "Senior Seminar", credits: 0, level: 39000,
		avgGPA: 3.82, difficulty: 1.3, workload: 2, reviews: 198,
		prereqs:   []string{"ECE 29401"},
		semesters: []string{"Fall", "Spring"},
		careerTags: []string{"software", "hardware", "ml"}, interestTags: []string{"career", "design"},
		majorRequirement: true, category: "core",
		description: "Professional practice and senior design preparation."},
	{code: "ECE 40862", name: "Software Testing", credits: 3, level: 40000,
		avgGPA: 3.18, difficulty: 2.9, workload: 10, reviews: 87,
		prereqs:   []string{"ECE 36800"},
		semesters: []string{"Fall", "Spring"},
		careerTags: []string{"software"}, interestTags: []string{"programming", "quality"},
		techElective: true, category: "depth",
		description: "Testing strategies, coverage analysis, and automated test infrastructure."},
	{code: "ECE 43700", name: "Introduction to VLSI Design", credits: 3, level: 43000,
		avgGPA: 2.82, difficulty: 3.9, workload: 14, reviews: 98,
		prereqs:   []string{"ECE 27000"},
		semesters: []string{"Fall", "Spring"},
		careerTags: []string{"vlsi", "hardware"}, interestTags: []string{"circuits", "digital", "chip-design"},
		techElective: true, category: "depth",
		description: "CMOS logic design, layout, and verification methodologies."},
	{code: "ECE 44000", name: "Digital Integrated Circuits", credits: 3, level: 44000,
		avgGPA: 2.75, difficulty: 4.0, workload: 14, reviews: 76,
		prereqs:   []string{"ECE 20002", "ECE 27000"},
		semesters: []string{"Fall"},
		careerTags: []string{"vlsi", "hardware"}, interestTags: []string{"circuits", "digital"},
		techElective: true, category: "depth",
		description: "Analysis and design of digital integrated circuits."},
	{code: "ECE 46100", name: "Software Engineering", credits: 3, level: 46000,
		avgGPA: 3.15, difficulty: 2.8, workload: 10, reviews: 112,
		prereqs:   []string{"ECE 36800"},
		semesters: []string{"Fall", "Spring"},
		careerTags: []string{"software"}, interestTags: []string{"programming", "teamwork", "management"},
		techElective: true, category: "depth",
		description: "Software development lifecycle, design patterns, testing, and project management."},
	{code: "ECE 46300", name: "Introduction to Computer Communication Networks", credits: 3, level: 46000,
		avgGPA: 2.98, difficulty: 3.3, workload: 12, reviews: 134,
		prereqs:   []string{"ECE 36800"},
		semesters: []string{"Fall", "Spring"},
		careerTags: []string{"software", "communications"}, interestTags: []string{"networking", "systems"},
		techElective: true, category: "depth",
		description: "Network protocols, TCP/IP, routing, and wireless networking."},
	{code: "ECE 46900", name: "Object-Oriented Programming with C++", credits: 3, level: 46000,
		avgGPA: 3.02, difficulty: 3.2, workload: 12, reviews: 145,
		prereqs:   []string{"ECE 26400"},
		semesters: []string{"Fall", "Spring"},
		careerTags: []string{"software"}, interestTags: []string{"programming", "design"},
		techElective: true, category: "depth",
		description: "Object-oriented design and programming in C++."},
	{code: "ECE 47700", name: "Senior Design", credits: 3, level: 47000,
		avgGPA: 3.35, difficulty: 3.0, workload: 12, reviews: 187,
		prereqs:   []string{"ECE 39401"},
		semesters: []string{"Fall", "Spring"},
		careerTags: []string{"software", "hardware", "embedded"}, interestTags: []string{"design", "teamwork", "hands-on"},
		majorRequirement: true, category: "capstone",
		description: "Capstone team design project."},
	{code: "ECE 49500", name: "Introduction to Machine Learning", credits: 3, level: 49000,
		avgGPA: 3.08, difficulty: 3.5, workload: 13, reviews: 187,
		prereqs:   []string{"ECE 30200", "ECE 20875"},
		semesters: []string{"Fall", "Spring"},
		careerTags: []string{"ml", "software"}, interestTags: []string{"programming", "math", "ai"},
		techElective: true, category: "depth",
		description: "Supervised and unsupervised learning, model evaluation, neural networks."},
	{code: "ECE 49595", name: "Computer Vision", credits: 3, level: 49000,
		avgGPA: 3.12, difficulty: 3.6, workload: 13, reviews: 98,
		prereqs:   []string{"ECE 30100", "ECE 20875"},
		semesters: []string{"Spring"},
		careerTags: []string{"ml", "software", "robotics"}, interestTags: []string{"programming", "math", "vision"},
		techElective: true, category: "depth",
		description: "Image formation, feature extraction, and recognition."},
	{code: "ECE 50024", name: "Machine Learning", credits: 3, level: 50000,
		avgGPA: 3.28, difficulty: 4.0, workload: 15, reviews: 123,
		prereqs:   []string{"ECE 49500"},
		semesters: []string{"Fall"},
		careerTags: []string{"ml", "software"}, interestTags: []string{"programming", "math", "theory"},
		techElective: true, category: "depth",
		description: "Statistical foundations of machine learning."},
	{code: "ECE 50863", name: "Deep Learning", credits: 3, level: 50000,
		avgGPA: 3.22, difficulty: 3.6, workload: 14, reviews: 156,
		prereqs:   []string{"ECE 49500"},
		semesters: []string{"Fall", "Spring"},
		careerTags: []string{"ml", "software"}, interestTags: []string{"programming", "math", "ai"},
		techElective: true, category: "depth",
		description: "Deep architectures, CNNs, RNNs, transformers, and applications."},
	{code: "ECE 53800", name: "Digital Signal Processing", credits: 3, level: 53000,
		avgGPA: 2.78, difficulty: 3.9, workload: 14, reviews: 112,
		prereqs:   []string{"ECE 30100"},
		semesters: []string{"Fall", "Spring"},
		careerTags: []string{"signals", "communications", "embedded"}, interestTags: []string{"dsp", "math", "programming"},
		techElective: true, category: "depth",
		description: "Discrete-time signal processing, DFT, FFT, and digital filter design."},
	{code: "ECE 55900", name: "Microprocessor Architectures", credits: 3, level: 55000,
		avgGPA: 2.92, difficulty: 3.7, workload: 13, reviews: 89,
		prereqs:   []string{"ECE 36200"},
		semesters: []string{"Fall"},
		careerTags: []string{"hardware", "embedded", "software"}, interestTags: []string{"architecture", "systems"},
		techElective: true, category: "depth",
		description: "Pipelining, caching, and multiprocessor architecture."},
	{code: "ECE 56900", name: "Introduction to Robotic Systems", credits: 3, level: 56000,
		avgGPA: 3.08, difficulty: 3.4, workload: 12, reviews: 87,
		prereqs:   []string{"ECE 30100"},
		semesters: []string{"Fall"},
		careerTags: []string{"robotics", "embedded", "ml"}, interestTags: []string{"programming", "control", "hands-on"},
		techElective: true, category: "depth",
		description: "Kinematics, sensing, and control of robotic systems."},
	{code: "ECE 57000", name: "Artificial Intelligence", credits: 3, level: 57000,
		avgGPA: 3.05, difficulty: 3.5, workload: 12, reviews: 134,
		prereqs:   []string{"ECE 36800"},
		semesters: []string{"Fall", "Spring"},
		careerTags: []string{"ml", "software", "robotics"}, interestTags: []string{"programming", "theory", "ai"},
		techElective: true, category: "depth",
		description: "Search, knowledge representation, and learning."},
	{code: "ECE 59500", name: "Reinforcement Learning", credits: 3, level: 59000,
		avgGPA: 3.18, difficulty: 3.8, workload: 14, reviews: 76,
		prereqs:   []string{"ECE 49500"},
		semesters: []string{"Spring"},
		careerTags: []string{"ml", "robotics"}, interestTags: []string{"math", "programming", "ai"},
		techElective: true, category: "depth",
		description: "Markov decision processes, value and policy methods."},
	{code: "ECE 60146", name: "Control Systems", credits: 3, level: 60000,
		avgGPA: 2.85, difficulty: 3.8, workload: 13, reviews: 98,
		prereqs:   []string{"ECE 30100"},
		semesters: []string{"Fall", "Spring"},
		careerTags: []string{"robotics", "embedded", "hardware"}, interestTags: []string{"control", "math", "systems"},
		techElective: true, category: "depth",
		description: "Feedback control analysis and design."},
	{code: "ECE 60827", name: "Parallel Computing", credits: 3, level: 60000,
		avgGPA: 3.12, difficulty: 3.5, workload: 13, reviews: 76,
		prereqs:   []string{"ECE 36800"},
		semesters: []string{"Fall"},
		careerTags: []string{"software", "ml", "hardware"}, interestTags: []string{"programming", "systems", "gpu"},
		techElective: true, category: "depth",
		description: "Parallel algorithms and GPU programming."},
	{code: "ECE 60872", name: "Fault-Tolerant Computer System Design", credits: 3, level: 60000,
		avgGPA: 3.25, difficulty: 3.4, workload: 12, reviews: 54,
		prereqs:   []string{"ECE 36200"},
		semesters: []string{"Spring"},
		careerTags: []string{"hardware", "embedded", "software"}, interestTags: []string{"systems", "reliability"},
		techElective: true, category: "depth",
		description: "Redundancy, error detection, and recovery in computer systems."},
	{code: "ECE 69500", name: "Generative AI", credits: 3, level: 69000,
		avgGPA: 3.32, difficulty: 3.7, workload: 14, reviews: 45,
		prereqs:   []string{"ECE 50863"},
		semesters: []string{"Spring"},
		careerTags: []string{"ml", "software"}, interestTags: []string{"programming", "ai", "research"},
		techElective: true, category: "depth",
		description: "Generative model architectures and applications."},
}

// SampleCourses returns the bundled demo catalog used when the live catalog
// cannot be scraped and by the seed command.
func SampleCourses() []*types.Course {
	courses := make([]*types.Course, 0, len(sampleCatalog))
	for _, sc := range sampleCatalog {
		courses = append(courses, &types.Course{
			Code:                sc.code,
			Name:                sc.name,
			Description:         sc.description,
			Department:          "ECE",
			Credits:             sc.credits,
			Level:               sc.level,
			AvgGPA:              fptr(sc.avgGPA),
			DifficultyRating:    fptr(sc.difficulty),
			WorkloadHours:       fptr(sc.workload),
			ReviewCount:         sc.reviews,
			Prerequisites:       append([]string{}, sc.prereqs...),
			Corequisites:        append([]string{}, sc.coreqs...),
			Semesters:           append([]string{}, sc.semesters...),
			CareerTags:          append([]string{}, sc.careerTags...),
			InterestTags:        append([]string{}, sc.interestTags...),
			IsMajorRequirement:  sc.majorRequirement,
			IsTechElective:      sc.techElective,
			IsLabCredit:         sc.labCredit,
			RequirementCategory: sc.category,
		})
	}
	return courses
}
