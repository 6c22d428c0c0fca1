package sentiment

import (
	"context"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/newslens/internal/models"
)

type fakeTranslator struct {
	mu    sync.Mutex
	out   map[string]string
	calls int
	panic bool
}

func (f *fakeTranslator) Translate(_ context.Context, text string) (string, bool) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.panic {
		panic("translator exploded")
	}
	if out, ok := f.out[text]; ok {
		return out, true
	}
	return text, false
}

type fakeClassifier struct {
	mu    sync.Mutex
	score float64
	seen  []string
	panic bool
}

func (f *fakeClassifier) Polarity(text string) float64 {
	f.mu.Lock()
	f.seen = append(f.seen, text)
	f.mu.Unlock()
	if f.panic {
		panic("classifier exploded")
	}
	return f.score
}

func TestAnalyze_InvalidInput(t *testing.T) {
	e := NewEngine(WithClassifier(&fakeClassifier{score: 1}))

	for _, text := range []string{"", "   ", "[removed]", "[Removed]", "(제목 없음)"} {
		got := e.Analyze(context.Background(), text, models.LanguageAuto)
		assert.Equal(t, models.SentimentResult{
			Label:        models.LabelNeutral,
			Polarity:     0,
			AnalyzedText: "(unanalyzable)",
			Method:       "none",
		}, got, "input %q", text)
	}
}

func TestAnalyze_KoreanTranslatedRealClassifier(t *testing.T) {
	tr := &fakeTranslator{out: map[string]string{
		"기쁨": "joy",
		"사랑": "love",
		"행복": "happiness",
		"슬픔": "sadness",
		"분노": "anger",
		"실패와 위기": "failure and crisis",
	}}
	e := NewEngine(WithTranslator(tr))

	tests := []struct {
		input string
		want  models.Label
	}{
		{"기쁨", models.LabelPositive},
		{"사랑", models.LabelPositive},
		{"행복", models.LabelPositive},
		{"슬픔", models.LabelNegative},
		{"분노", models.LabelNegative},
		{"실패와 위기", models.LabelNegative},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := e.Analyze(context.Background(), tt.input, models.LanguageKorean)
			assert.Equal(t, tt.want, got.Label)
			assert.Equal(t, tr.out[tt.input], got.AnalyzedText)
			assert.True(t, strings.HasPrefix(got.Method, "ko-lexicon("), got.Method)
		})
	}
}

func TestAnalyze_KoreanTranslatedWeights(t *testing.T) {
	tr := &fakeTranslator{out: map[string]string{"기쁨": "joy great"}}
	cl := &fakeClassifier{score: 0.5}
	e := NewEngine(WithTranslator(tr), WithClassifier(cl))

	got := e.Analyze(context.Background(), "기쁨", models.LanguageAuto)

	// 0.25*0.4 + 0.5*0.3 + 0.30*0.3
	assert.InDelta(t, 0.34, got.Polarity, 1e-9)
	assert.Equal(t, models.LabelPositive, got.Label)
	assert.Equal(t, "ko-lexicon(0.25)+translated-vader(0.50)+en-keywords(0.30)", got.Method)
	assert.Equal(t, []string{"joy great"}, cl.seen)
}

func TestAnalyze_KoreanWithoutTranslation(t *testing.T) {
	cl := &fakeClassifier{score: -1}
	e := NewEngine(WithTranslator(&fakeTranslator{}), WithClassifier(cl))

	got := e.Analyze(context.Background(), "기쁨", models.LanguageKorean)

	assert.Equal(t, models.SentimentResult{
		Label:        models.LabelPositive,
		Polarity:     0.25,
		AnalyzedText: "기쁨",
		Method:       "ko-lexicon only(0.25)",
	}, got)
	assert.Empty(t, cl.seen, "classifier must not run on untranslated Korean")
}

func TestAnalyze_KoreanNeutral(t *testing.T) {
	tr := &fakeTranslator{out: map[string]string{"회의실 예약": "reserve a meeting room"}}
	e := NewEngine(WithTranslator(tr), WithClassifier(&fakeClassifier{score: 0}))

	got := e.Analyze(context.Background(), "회의실 예약", models.LanguageKorean)
	assert.Equal(t, models.LabelNeutral, got.Label)
	assert.Equal(t, 0.0, got.Polarity)
}

func TestAnalyze_NilTranslator(t *testing.T) {
	e := NewEngine(WithClassifier(&fakeClassifier{score: 0.9}))

	got := e.Analyze(context.Background(), "슬픔", models.LanguageAuto)
	assert.Equal(t, "ko-lexicon only(-0.25)", got.Method)
	assert.Equal(t, models.LabelNegative, got.Label)
}

func TestAnalyze_EnglishSkipsTranslation(t *testing.T) {
	tr := &fakeTranslator{}
	cl := &fakeClassifier{score: 0.5}
	e := NewEngine(WithTranslator(tr), WithClassifier(cl))

	got := e.Analyze(context.Background(), "A great day", models.LanguageEnglish)

	assert.Zero(t, tr.calls)
	// 0.5*0.6 + 0.15*0.4
	assert.InDelta(t, 0.36, got.Polarity, 1e-9)
	assert.Equal(t, "vader(0.50)+en-keywords(0.15)", got.Method)
	assert.Equal(t, "A great day", got.AnalyzedText)
}

func TestAnalyze_NonEnglishTranslates(t *testing.T) {
	tr := &fakeTranslator{out: map[string]string{"Une journée terrible": "A terrible day"}}
	cl := &fakeClassifier{score: -0.5}
	e := NewEngine(WithTranslator(tr), WithClassifier(cl))

	got := e.Analyze(context.Background(), "Une journée terrible", models.LanguageFrench)

	assert.Equal(t, 1, tr.calls)
	assert.Equal(t, []string{"A terrible day"}, cl.seen)
	assert.Equal(t, "A terrible day", got.AnalyzedText)
	assert.InDelta(t, -0.36, got.Polarity, 1e-9)
	assert.Equal(t, models.LabelNegative, got.Label)
}

func TestAnalyze_NonKoreanTranslationFailure(t *testing.T) {
	cl := &fakeClassifier{score: 0.2}
	e := NewEngine(WithTranslator(&fakeTranslator{}), WithClassifier(cl))

	got := e.Analyze(context.Background(), "Bonjour tout le monde", models.LanguageAuto)

	assert.Equal(t, []string{"Bonjour tout le monde"}, cl.seen)
	assert.Equal(t, "vader(0.20)+en-keywords(0.00)", got.Method)
	assert.Equal(t, "Bonjour tout le monde", got.AnalyzedText)
}

func TestAnalyze_KoreanDeclaredEnglishStillTranslates(t *testing.T) {
	tr := &fakeTranslator{out: map[string]string{"기쁨": "joy"}}
	e := NewEngine(WithTranslator(tr), WithClassifier(&fakeClassifier{score: 0.5}))

	got := e.Analyze(context.Background(), "기쁨", models.LanguageEnglish)
	assert.Equal(t, 1, tr.calls)
	assert.True(t, strings.HasPrefix(got.Method, "ko-lexicon("))
}

func TestAnalyze_RomanizedKoreanIsNotKorean(t *testing.T) {
	e := NewEngine(WithTranslator(&fakeTranslator{}), WithClassifier(&fakeClassifier{}))

	got := e.Analyze(context.Background(), "annyeonghaseyo", models.LanguageKorean)
	assert.True(t, strings.HasPrefix(got.Method, "vader("), got.Method)
}

func TestAnalyze_ClampsFinalScore(t *testing.T) {
	e := NewEngine(WithClassifier(&fakeClassifier{score: 1}))

	got := e.Analyze(context.Background(), "good great best win success grow surge boost", models.LanguageEnglish)
	assert.Equal(t, 1.0, got.Polarity)
	assert.Equal(t, models.LabelPositive, got.Label)

	e = NewEngine(WithClassifier(&fakeClassifier{score: 7}))
	got = e.Analyze(context.Background(), "nothing here", models.LanguageEnglish)
	assert.Equal(t, 0.6, got.Polarity, "classifier output is clamped before weighting")
}

func TestAnalyze_TruncatesAnalyzedText(t *testing.T) {
	e := NewEngine(WithClassifier(&fakeClassifier{}))

	got := e.Analyze(context.Background(), strings.Repeat("기쁨 ", 80), models.LanguageKorean)
	assert.Equal(t, 100, utf8.RuneCountInString(got.AnalyzedText))
	assert.True(t, strings.HasPrefix(strings.Repeat("기쁨 ", 80), got.AnalyzedText))
}

func TestAnalyze_RecoversCollaboratorPanics(t *testing.T) {
	e := NewEngine(
		WithTranslator(&fakeTranslator{panic: true}),
		WithClassifier(&fakeClassifier{score: 1}),
	)
	got := e.Analyze(context.Background(), "기쁨", models.LanguageKorean)
	assert.Equal(t, "ko-lexicon only(0.25)", got.Method)

	e = NewEngine(WithClassifier(&fakeClassifier{panic: true}))
	got = e.Analyze(context.Background(), "a good day", models.LanguageEnglish)
	assert.Equal(t, "vader(0.00)+en-keywords(0.15)", got.Method)
}

func TestAnalyze_RealPipelineEnglish(t *testing.T) {
	e := NewEngine()

	pos := e.Analyze(context.Background(), "Stocks hit a record high as profits surge", models.LanguageEnglish)
	assert.Equal(t, models.LabelPositive, pos.Label)

	neg := e.Analyze(context.Background(), "Markets crash as recession fears deepen", models.LanguageEnglish)
	assert.Equal(t, models.LabelNegative, neg.Label)

	for _, r := range []models.SentimentResult{pos, neg} {
		assert.GreaterOrEqual(t, r.Polarity, -1.0)
		assert.LessOrEqual(t, r.Polarity, 1.0)
	}
}

func TestAnalyze_Concurrent(t *testing.T) {
	tr := &fakeTranslator{out: map[string]string{"기쁨": "joy"}}
	e := NewEngine(WithTranslator(tr))

	want := e.Analyze(context.Background(), "기쁨", models.LanguageKorean)

	var wg sync.WaitGroup
	results := make([]models.SentimentResult, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = e.Analyze(context.Background(), "기쁨", models.LanguageKorean)
		}()
	}
	wg.Wait()

	for _, r := range results {
		require.Equal(t, want, r)
	}
}
