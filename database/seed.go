package database

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ousidus/braintrain/internal/apperr"
	"github.com/ousidus/braintrain/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var hexCodePattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

var stroopColors = []model.StroopColor{
	{Name: "красный", HexCode: "#FF0000"},
	{Name: "синий", HexCode: "#0000FF"},
	{Name: "зелёный", HexCode: "#008000"},
	{Name: "жёлтый", HexCode: "#FFD700"},
	{Name: "оранжевый", HexCode: "#FFA500"},
	{Name: "фиолетовый", HexCode: "#800080"},
}

var exerciseTypes = []model.ExerciseType{
	{Name: "counting", Description: "Счёт вслух", DurationSeconds: 120, Instructions: "Считайте вслух от 1 до 120 как можно быстрее"},
	{Name: "arithmetic", Description: "Арифметика", DurationSeconds: 120, Instructions: "Решите 100 простых примеров на скорость"},
	{Name: "reading", Description: "Чтение вслух", DurationSeconds: 180, Instructions: "Прочитайте текст вслух чётко и внятно"},
	{Name: "stroop", Description: "Тест Струпа", DurationSeconds: 120, Instructions: "Назовите ЦВЕТ букв, игнорируя само слово"},
	{Name: "memory", Description: "Запоминание слов", DurationSeconds: 180, Instructions: "Запомните слова, затем воспроизведите их"},
}

// Word categories are kept pairwise disjoint so that a memory-word draw,
// which pools three lists without deduplication, never repeats a word.
// verifyWordListsDisjoint guards this at startup.
var wordCategories = []struct {
	Category string
	Words    []string
}{
	{"животные", []string{"кошка", "собака", "лошадь", "корова", "птица", "рыба", "медведь", "волк", "лиса", "заяц", "мышь", "слон"}},
	{"еда", []string{"хлеб", "молоко", "яблоко", "суп", "каша", "мясо", "рис", "сыр", "масло", "яйцо", "картофель", "морковь"}},
	{"дом", []string{"стол", "стул", "кровать", "шкаф", "окно", "дверь", "лампа", "диван", "зеркало", "ковёр", "полка", "часы"}},
	{"природа", []string{"дерево", "цветок", "река", "гора", "солнце", "луна", "облако", "дождь", "снег", "ветер", "трава", "лес"}},
}

var readingPassages = []struct {
	Title   string
	Content string
}{
	{"Утро в деревне", "Раннее утро в деревне начинается с пения петухов. Солнце медленно поднимается над горизонтом, окрашивая небо в розовые и золотые тона. Роса блестит на траве, как маленькие бриллианты. Деревенские жители уже проснулись и начинают свои дела. Бабушка выходит покормить кур, дедушка идёт в огород. Воздух свежий и чистый, пахнет цветами и скошенной травой. Птицы поют свои весёлые песни, приветствуя новый день."},
	{"Зимний лес", "Зимний лес стоит тихий и задумчивый. Деревья укрыты белым снегом, словно надели пушистые шубы. Под ногами хрустит снег. Следы зайца ведут в чащу леса. На ветке сидит красногрудый снегирь. Мороз щиплет щёки, но в лесу хорошо и спокойно. Солнечные лучи пробиваются сквозь ветви и рисуют на снегу причудливые узоры. Лёгкий ветерок качает верхушки елей."},
	{"Весенний сад", "Весна пришла в наш сад. Яблони и вишни покрылись белыми и розовыми цветами. Пчёлы жужжат, собирая нектар. В воздухе разлит сладкий аромат цветущих деревьев. Птицы вернулись из тёплых краёв и строят гнёзда. Трава зеленеет с каждым днём. На клумбах распустились первые тюльпаны и нарциссы. Всё вокруг радуется теплу и солнцу."},
}

// Seed inserts the reference corpus when the store is empty and then runs the
// precondition checks every boot. Re-running against a populated store only
// re-verifies; nothing is ever duplicated or mutated.
func Seed(db *gorm.DB) error {
	var colorCount int64
	if err := db.Model(&model.StroopColor{}).Count(&colorCount).Error; err != nil {
		return fmt.Errorf("seed: counting stroop colors: %w", err)
	}

	if colorCount == 0 {
		if err := db.Transaction(insertReferenceData); err != nil {
			log.Error().Err(err).Msg("Seeding reference data failed")
			return err
		}
		log.Info().Msg("Reference data seeded")
	} else {
		log.Info().Msg("Reference data already present, skipping seed")
	}

	return VerifyReferenceData(db)
}

func insertReferenceData(tx *gorm.DB) error {
	if err := tx.Create(&stroopColors).Error; err != nil {
		return fmt.Errorf("seed: stroop colors: %w", err)
	}
	if err := tx.Create(&exerciseTypes).Error; err != nil {
		return fmt.Errorf("seed: exercise types: %w", err)
	}

	var problems []model.MathProblem
	for a := 1; a <= 20; a++ {
		for b := 1; b <= 20; b++ {
			problems = append(problems, model.MathProblem{
				Expression: fmt.Sprintf("%d + %d", a, b), Answer: a + b, Difficulty: 1,
			})
			if a >= b {
				problems = append(problems, model.MathProblem{
					Expression: fmt.Sprintf("%d - %d", a, b), Answer: a - b, Difficulty: 1,
				})
			}
		}
	}
	for a := 2; a <= 10; a++ {
		for b := 2; b <= 10; b++ {
			problems = append(problems, model.MathProblem{
				Expression: fmt.Sprintf("%d × %d", a, b), Answer: a * b, Difficulty: 2,
			})
		}
	}
	if err := tx.CreateInBatches(problems, 200).Error; err != nil {
		return fmt.Errorf("seed: math problems: %w", err)
	}

	for _, wc := range wordCategories {
		words, err := json.Marshal(wc.Words)
		if err != nil {
			return fmt.Errorf("seed: encoding word list %q: %w", wc.Category, err)
		}
		list := model.WordList{Category: wc.Category, Words: words, Difficulty: 1}
		if err := tx.Create(&list).Error; err != nil {
			return fmt.Errorf("seed: word list %q: %w", wc.Category, err)
		}
	}

	for _, rp := range readingPassages {
		passage := model.ReadingPassage{
			Title:      rp.Title,
			Content:    rp.Content,
			WordCount:  len(strings.Fields(rp.Content)),
			Difficulty: 1,
		}
		if err := tx.Create(&passage).Error; err != nil {
			return fmt.Errorf("seed: reading passage %q: %w", rp.Title, err)
		}
	}
	return nil
}

// VerifyReferenceData enforces the sampling preconditions loudly at startup
// instead of letting generators degrade at request time: at least 2 colors
// with well-formed hex codes, at least 3 pairwise word-disjoint word lists,
// at least one passage, and every math answer consistent with its expression.
func VerifyReferenceData(db *gorm.DB) error {
	var colors []model.StroopColor
	if err := db.Find(&colors).Error; err != nil {
		return fmt.Errorf("verify: loading stroop colors: %w", err)
	}
	if len(colors) < 2 {
		return apperr.ErrNotEnoughColors
	}
	for _, c := range colors {
		if !hexCodePattern.MatchString(c.HexCode) {
			return fmt.Errorf("%w: color %q has malformed hex code %q", apperr.ErrPrecondition, c.Name, c.HexCode)
		}
	}

	var lists []model.WordList
	if err := db.Find(&lists).Error; err != nil {
		return fmt.Errorf("verify: loading word lists: %w", err)
	}
	if len(lists) < 3 {
		return apperr.ErrNotEnoughWordLists
	}
	if err := verifyWordListsDisjoint(lists); err != nil {
		return err
	}

	var passageCount int64
	if err := db.Model(&model.ReadingPassage{}).Count(&passageCount).Error; err != nil {
		return fmt.Errorf("verify: counting reading passages: %w", err)
	}
	if passageCount == 0 {
		return fmt.Errorf("%w: no reading passages seeded", apperr.ErrPrecondition)
	}

	var problems []model.MathProblem
	if err := db.Find(&problems).Error; err != nil {
		return fmt.Errorf("verify: loading math problems: %w", err)
	}
	if len(problems) == 0 {
		return fmt.Errorf("%w: no math problems seeded", apperr.ErrPrecondition)
	}
	for _, p := range problems {
		want, err := EvalExpression(p.Expression)
		if err != nil {
			return fmt.Errorf("%w: problem %d: %v", apperr.ErrPrecondition, p.ID, err)
		}
		if want != p.Answer {
			return fmt.Errorf("%w: problem %d: %q evaluates to %d, stored answer %d",
				apperr.ErrPrecondition, p.ID, p.Expression, want, p.Answer)
		}
	}

	log.Info().
		Int("colors", len(colors)).
		Int("word_lists", len(lists)).
		Int64("passages", passageCount).
		Int("math_problems", len(problems)).
		Msg("Reference data verified")
	return nil
}

func verifyWordListsDisjoint(lists []model.WordList) error {
	seen := make(map[string]string) // word -> category
	for _, l := range lists {
		var words []string
		if err := json.Unmarshal(l.Words, &words); err != nil {
			return fmt.Errorf("%w: word list %q has a malformed words payload: %v", apperr.ErrPrecondition, l.Category, err)
		}
		if len(words) == 0 {
			return fmt.Errorf("%w: word list %q is empty", apperr.ErrPrecondition, l.Category)
		}
		for _, w := range words {
			if other, dup := seen[w]; dup {
				return fmt.Errorf("%w: word %q appears in both %q and %q", apperr.ErrPrecondition, w, other, l.Category)
			}
			seen[w] = l.Category
		}
	}
	return nil
}

// EvalExpression evaluates a seeded two-operand expression. The operator set
// matches the corpus: "+", "-", and the multiplication sign "×".
func EvalExpression(expr string) (int, error) {
	fields := strings.Fields(expr)
	if len(fields) != 3 {
		return 0, fmt.Errorf("expression %q is not of the form \"a op b\"", expr)
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("expression %q: bad left operand: %w", expr, err)
	}
	b, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, fmt.Errorf("expression %q: bad right operand: %w", expr, err)
	}
	switch fields[1] {
	case "+":
		return a + b, nil
	case "-", "−":
		return a - b, nil
	case "×":
		return a * b, nil
	default:
		return 0, fmt.Errorf("expression %q: unsupported operator %q", expr, fields[1])
	}
}
