package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/MikeMC777/motoshop/internal/analytics"
	"github.com/MikeMC777/motoshop/internal/motorcycle"
	"github.com/MikeMC777/motoshop/internal/user"
)

const noPrice = "Цена не указана"

func price(m *motorcycle.Motorcycle) string {
	if !m.HasPrice() {
		return noPrice
	}
	return m.Price.String() + " " + m.Currency
}

func printList(w io.Writer, items []motorcycle.Motorcycle, filtered bool) {
	if len(items) == 0 {
		if filtered {
			fmt.Fprintln(w, "Ничего не найдено. Попробуйте изменить фильтры")
		} else {
			fmt.Fprintln(w, "Мотоциклов пока нет")
		}
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tНАЗВАНИЕ\tЦЕНА\tСТАТУС\tФОТО")
	for i := range items {
		m := &items[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", m.ID, m.Title, price(m), m.Status.Label(), len(m.Photos))
	}
	tw.Flush()
}

func printDetail(w io.Writer, m *motorcycle.Motorcycle) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\t%s\n", m.ID)
	fmt.Fprintf(tw, "Название\t%s\n", m.Title)
	fmt.Fprintf(tw, "Цена\t%s\n", price(m))
	fmt.Fprintf(tw, "Статус\t%s\n", m.Status.Label())
	if m.Description != nil && *m.Description != "" {
		fmt.Fprintf(tw, "Описание\t%s\n", *m.Description)
	}
	if d := m.Data; d != nil {
		if d.Mileage != nil {
			fmt.Fprintf(tw, "Пробег\t%s %s\n", strconv.Itoa(*d.Mileage), d.MileageUnit)
		}
		if d.Volume != nil {
			fmt.Fprintf(tw, "Объём\t%s %s\n", strconv.Itoa(*d.Volume), d.VolumeUnit)
		}
		if d.FrameNumber != "" {
			fmt.Fprintf(tw, "Номер рамы\t%s\n", d.FrameNumber)
		}
		if d.ArrivalDate != "" {
			fmt.Fprintf(tw, "Дата прибытия\t%s\n", d.ArrivalDate)
		}
	}
	if m.SourceURL != "" {
		fmt.Fprintf(tw, "Источник\t%s\n", m.SourceURL)
	}
	for i, p := range m.SortedPhotos() {
		fmt.Fprintf(tw, "Фото %d\t%s\n", i+1, p.S3URL)
	}
	tw.Flush()
}

func printUser(w io.Writer, u *user.User) {
	fmt.Fprintf(w, "Привет, %s!\n", u.DisplayName())
	if u.IsAdmin {
		fmt.Fprintln(w, "Роль: администратор")
	}
}

func printStats(w io.Writer, s *analytics.VisitStats) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Всего посещений\t%d\n", s.TotalVisits)
	fmt.Fprintf(tw, "Уникальных дней\t%d\n", s.UniqueDays)
	fmt.Fprintf(tw, "Первое посещение\t%s\n", s.FirstVisit.Format("2006-01-02"))
	fmt.Fprintf(tw, "Последнее посещение\t%s\n", s.LastVisit.Format("2006-01-02"))
	fmt.Fprintf(tw, "В среднем за день\t%.1f\n", s.AvgVisitsPerDay)
	tw.Flush()
}
