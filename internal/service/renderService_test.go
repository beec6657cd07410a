package service

import (
	"context"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	"menubot/internal/database"
	"menubot/internal/entity"
	"menubot/internal/parser"
	"menubot/internal/pkg/compositor"
	"menubot/internal/pkg/kafka"
	"menubot/internal/pkg/storage"
)

// memoryCache - кэш в памяти для тестов вместо Redis
type memoryCache struct {
	ids map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{ids: make(map[string]string)}
}

func (c *memoryCache) GetID(ctx context.Context, textHash string) (string, bool) {
	id, ok := c.ids[textHash]
	return id, ok
}

func (c *memoryCache) SetID(ctx context.Context, textHash, renderID string) {
	c.ids[textHash] = renderID
}

// recordingProducer запоминает отправленные события
type recordingProducer struct {
	events []entity.RenderEvent
}

func (p *recordingProducer) SendRenderEvent(event entity.RenderEvent) error {
	p.events = append(p.events, event)
	return nil
}

func (p *recordingProducer) Close() error { return nil }

func newTestCompositor(t *testing.T) *compositor.Compositor {
	t.Helper()

	faces := compositor.NewFaceSet()
	black := color.NRGBA{A: 255}
	faces.Add(compositor.FaceTitle, &compositor.FaceStyle{Face: basicfont.Face7x13, Color: black, Uppercase: true})
	faces.Add(compositor.FaceDescription, &compositor.FaceStyle{Face: basicfont.Face7x13, Color: black})
	faces.Add(compositor.FaceWarning, &compositor.FaceStyle{Face: basicfont.Face7x13, Color: black})
	faces.Add(compositor.FaceDate, &compositor.FaceStyle{Face: basicfont.Face7x13, Color: black})

	img := imaging.New(797, 1132, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	tpl, err := compositor.NewTemplate(img, 797, 1132)
	require.NoError(t, err)

	zones := []compositor.Zone{
		{ID: "date_block", Kind: compositor.KindText, X: 540, Y: 64, Width: 210, Height: 48, Face: compositor.FaceDate},
		{ID: "ПН", Kind: compositor.KindText, X: 60, Y: 180, Width: 300, MaxHeight: 200, Face: compositor.FaceTitle},
		{ID: "ВТ", Kind: compositor.KindText, X: 60, Y: 400, Width: 300, MaxHeight: 200, Face: compositor.FaceTitle},
		{ID: "СР", Kind: compositor.KindText, X: 60, Y: 620, Width: 300, MaxHeight: 200, Face: compositor.FaceTitle},
		{ID: "ЧТ", Kind: compositor.KindText, X: 420, Y: 180, Width: 300, MaxHeight: 200, Face: compositor.FaceTitle},
		{ID: "ПТ", Kind: compositor.KindText, X: 420, Y: 400, Width: 300, MaxHeight: 200, Face: compositor.FaceTitle},
	}

	return compositor.New(tpl, zones, faces, 6)
}

func newTestService(t *testing.T, cache *memoryCache, producer *recordingProducer) RenderService {
	t.Helper()

	cfg := layoutTestConfig()
	menuParser := parser.NewMenuParser(cfg.Menu.Days, 7)
	repo := database.NewRenderRepository(storage.NewFileStorage(t.TempDir()))

	var p kafka.Producer = producer
	if producer == nil {
		p = kafka.NewMockProducer()
	}

	return NewRenderService(cfg, menuParser, newTestCompositor(t), repo, cache, p)
}

const sampleMenuText = `15.12-19.12

ПН:
1. Борщ [со сметаной]
2. Плов [с бараниной]

ВТ:
1. Солянка [мясная]

ПТ:
БИЗНЕС ЛАНЧЕЙ НЕ БУДЕТ`

func TestRenderMenu(t *testing.T) {
	producer := &recordingProducer{}
	svc := newTestService(t, newMemoryCache(), producer)

	render, data, err := svc.RenderMenu(context.Background(), entity.SourceTelegram, 42, sampleMenuText)
	require.NoError(t, err)

	assert.NotEmpty(t, render.ID)
	assert.Equal(t, entity.RenderStatusCompleted, render.Status)
	assert.Equal(t, 797, render.Width)
	assert.Equal(t, 1132, render.Height)
	assert.NotEmpty(t, data)

	// Рендер сохранен и доступен по идентификатору
	found, err := svc.GetRender(render.ID)
	require.NoError(t, err)
	assert.Equal(t, render.ID, found.ID)

	path, err := svc.GetRenderImagePath(render.ID)
	require.NoError(t, err)
	assert.FileExists(t, path)

	// Событие рендера отправлено
	require.Len(t, producer.events, 1)
	assert.Equal(t, render.ID, producer.events[0].RenderID)
	assert.Equal(t, int64(42), producer.events[0].ChatID)
}

func TestRenderMenuServedFromCache(t *testing.T) {
	cache := newMemoryCache()
	svc := newTestService(t, cache, &recordingProducer{})

	first, firstData, err := svc.RenderMenu(context.Background(), entity.SourceHTTP, 0, sampleMenuText)
	require.NoError(t, err)

	// Повторный запрос того же текста отдает сохраненный рендер
	second, secondData, err := svc.RenderMenu(context.Background(), entity.SourceHTTP, 0, sampleMenuText)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, firstData, secondData)
}

func TestRenderMenuCacheKeyIgnoresLineEndings(t *testing.T) {
	crlf := "ПН:\r\n1. Борщ [со сметаной]\r\n"
	lf := "ПН:\n1. Борщ [со сметаной]\n"
	assert.Equal(t, hashMenuText(crlf), hashMenuText(lf))
}

func TestRenderMenuParseError(t *testing.T) {
	svc := newTestService(t, newMemoryCache(), nil)

	_, _, err := svc.RenderMenu(context.Background(), entity.SourceTelegram, 1, "просто текст без дней")
	assert.Error(t, err)
}

func TestDeleteRender(t *testing.T) {
	svc := newTestService(t, newMemoryCache(), nil)

	render, _, err := svc.RenderMenu(context.Background(), entity.SourceHTTP, 0, sampleMenuText)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRender(render.ID))

	_, err = svc.GetRender(render.ID)
	assert.ErrorIs(t, err, entity.ErrRenderNotFound)
}
