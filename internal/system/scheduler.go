// internal/system/scheduler.go
package system

import "container/heap"

// TimerID идентифицирует отложенный вызов для отмены.
type TimerID uint64

type scheduledCall struct {
	fireAt float64
	seq    uint64 // порядок вставки для стабильности при равном времени
	id     TimerID
	fn     func()
}

type timerHeap []*scheduledCall

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].fireAt != h[j].fireAt {
		return h[i].fireAt < h[j].fireAt
	}
	return h[i].seq < h[j].seq
}

func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x interface{}) {
	*h = append(*h, x.(*scheduledCall))
}

func (h *timerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Scheduler — явная очередь отложенных вызовов, управляемая игровым
// временем, а не wall-clock. Задержки волн и прочие "сделай через N секунд"
// идут через него: тесты могут крутить время детерминированно, а ядро
// никогда не блокирует кадровый цикл.
type Scheduler struct {
	now       float64
	queue     timerHeap
	nextSeq   uint64
	nextID    TimerID
	cancelled map[TimerID]bool
}

func NewScheduler() *Scheduler {
	s := &Scheduler{
		cancelled: make(map[TimerID]bool),
	}
	heap.Init(&s.queue)
	return s
}

// Now возвращает текущее игровое время планировщика.
func (s *Scheduler) Now() float64 {
	return s.now
}

// After планирует вызов fn через delay секунд игрового времени.
// Неположительная задержка сработает на ближайшем Advance.
func (s *Scheduler) After(delay float64, fn func()) TimerID {
	s.nextID++
	s.nextSeq++
	heap.Push(&s.queue, &scheduledCall{
		fireAt: s.now + delay,
		seq:    s.nextSeq,
		id:     s.nextID,
		fn:     fn,
	})
	return s.nextID
}

// Cancel отменяет отложенный вызов. Отмена уже сработавшего или
// неизвестного таймера — no-op.
func (s *Scheduler) Cancel(id TimerID) {
	s.cancelled[id] = true
}

// Advance продвигает игровое время и синхронно выполняет все созревшие
// вызовы в порядке (время, вставка). Вызов может планировать новые таймеры;
// если они созревают в этом же кадре, они тоже сработают.
func (s *Scheduler) Advance(dt float64) {
	s.now += dt
	for s.queue.Len() > 0 {
		next := s.queue[0]
		if next.fireAt > s.now {
			break
		}
		heap.Pop(&s.queue)
		if s.cancelled[next.id] {
			delete(s.cancelled, next.id)
			continue
		}
		next.fn()
	}
}

// Reset сбрасывает очередь целиком. Используется при рестарте игры: ещё не
// сработавший спавн старой волны не должен дожить до новой.
func (s *Scheduler) Reset() {
	s.queue = s.queue[:0]
	s.cancelled = make(map[TimerID]bool)
	s.now = 0
}

// Pending возвращает число невыполненных вызовов (без учёта отменённых).
func (s *Scheduler) Pending() int {
	count := 0
	for _, call := range s.queue {
		if !s.cancelled[call.id] {
			count++
		}
	}
	return count
}
