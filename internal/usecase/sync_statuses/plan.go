package sync_statuses

import (
	"fmt"

	"github.com/kmalt/EMS-EventService/internal/domain"
)

// quoteBatch групповая смена статуса предложений
type quoteBatch struct {
	ids    []int64
	target domain.QuoteStatus
	note   string
}

// plan детерминированный план изменений, вычисленный по таблице правил
// Чистые данные: применение плана к хранилищу - отдельный шаг
type plan struct {
	eventTarget *domain.EventStatus // Итоговый статус события, если он меняется
	batches     []quoteBatch
	changes     []string
}

// buildPlan применяет упорядоченную таблицу правил ровно один раз (без
// поиска неподвижной точки) и возвращает план изменений
//
// Порядок правил фиксирован:
//  1. event→quotes: каскад запрошенного статуса события на предложения
//  2. quote→event: вывод статуса события из изменившегося предложения
//  3. auto-reconciliation (только direction=both): повторный вывод
//     инвариантов независимо от явного запроса
//
// Каждое правило перед записью проверяет "состояние уже целевое?" -
// отсюда идемпотентность повторного вызова
func buildPlan(event *domain.Event, quotes []*domain.Quote, req *Request) (*plan, error) {
	p := &plan{changes: make([]string, 0)}

	// Рабочие копии статусов: правила 2 и 3 видят эффекты правила 1
	working := event.Status
	quoteStatus := make(map[int64]domain.QuoteStatus, len(quotes))
	for _, q := range quotes {
		quoteStatus[q.ID] = q.Status
	}

	setEvent := func(target domain.EventStatus, note string) {
		working = target
		p.changes = append(p.changes, note)
	}

	// --- Правило 1: event → quotes ---
	if req.Direction.includesEventToQuotes() && req.EventStatus != nil {
		requested := *req.EventStatus

		// Прямой запрос статуса проверяется таблицей переходов;
		// повторный запрос текущего статуса - допустимый no-op
		if requested != working {
			if err := domain.ValidateEventTransition(working, requested); err != nil {
				return nil, err
			}
			setEvent(requested, fmt.Sprintf("event status changed to %s", requested))
		}

		switch requested {
		case domain.EventStatusCancelled:
			// Принудительный EXPIRED для всех неэкспайренных предложений,
			// кроме принятых: принятое предложение переживает отмену события
			// как исторический факт
			ids := make([]int64, 0)
			for _, q := range quotes {
				current := quoteStatus[q.ID]
				if current != domain.QuoteStatusAccepted && current != domain.QuoteStatusExpired {
					ids = append(ids, q.ID)
					quoteStatus[q.ID] = domain.QuoteStatusExpired
				}
			}
			if len(ids) > 0 {
				p.batches = append(p.batches, quoteBatch{
					ids:    ids,
					target: domain.QuoteStatusExpired,
					note:   fmt.Sprintf("%d quote(s) expired by event cancellation", len(ids)),
				})
			}

		case domain.EventStatusConfirmed:
			// Массовое принятие: все отправленные/просмотренные предложения
			// принимаются вместе, без выбора единственного победителя
			ids := make([]int64, 0)
			for _, q := range quotes {
				current := quoteStatus[q.ID]
				if current == domain.QuoteStatusSent || current == domain.QuoteStatusViewed {
					ids = append(ids, q.ID)
					quoteStatus[q.ID] = domain.QuoteStatusAccepted
				}
			}
			if len(ids) > 0 {
				p.batches = append(p.batches, quoteBatch{
					ids:    ids,
					target: domain.QuoteStatusAccepted,
					note:   fmt.Sprintf("%d quote(s) accepted on event confirmation", len(ids)),
				})
			}
		}
	}

	// --- Правило 2: quote → event ---
	if req.Direction.includesQuoteToEvent() && req.QuoteStatus != nil {
		switch *req.QuoteStatus {
		case domain.QuoteStatusAccepted:
			if working != domain.EventStatusConfirmed {
				setEvent(domain.EventStatusConfirmed, "event confirmed by accepted quote")
			}

		case domain.QuoteStatusRejected:
			// Откат к RESERVED, только когда отклонены все предложения
			// события; выполняется derived-логикой даже из CANCELLED
			// (защитная реактивация для нового цикла котирования)
			if allRejected(quotes, quoteStatus) && working != domain.EventStatusReserved {
				setEvent(domain.EventStatusReserved, "event reopened: all quotes rejected")
			}

		case domain.QuoteStatusSent:
			if working == domain.EventStatusReserved {
				setEvent(domain.EventStatusQuoted, "event marked as quoted by sent quote")
			}
		}
	}

	// --- Правило 3: автосверка (только direction=both) ---
	if req.Direction == DirectionBoth {
		if anyInStatus(quoteStatus, domain.QuoteStatusAccepted) && working != domain.EventStatusConfirmed {
			setEvent(domain.EventStatusConfirmed, "event auto-confirmed: accepted quote present")
		}
		if working == domain.EventStatusReserved &&
			(anyInStatus(quoteStatus, domain.QuoteStatusSent) || anyInStatus(quoteStatus, domain.QuoteStatusViewed)) {
			setEvent(domain.EventStatusQuoted, "event auto-quoted: sent or viewed quote present")
		}
	}

	if working != event.Status {
		p.eventTarget = &working
	}

	return p, nil
}

// allRejected проверяет, что все предложения события отклонены
// Пустой список предложений отклонённым не считается
func allRejected(quotes []*domain.Quote, statuses map[int64]domain.QuoteStatus) bool {
	if len(quotes) == 0 {
		return false
	}
	for _, q := range quotes {
		if statuses[q.ID] != domain.QuoteStatusRejected {
			return false
		}
	}
	return true
}

func anyInStatus(statuses map[int64]domain.QuoteStatus, target domain.QuoteStatus) bool {
	for _, s := range statuses {
		if s == target {
			return true
		}
	}
	return false
}
