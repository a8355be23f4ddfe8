package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"shop-service/internal/entity"
	"shop-service/internal/repository"
)

type OrderService struct {
	repo        repository.OrderRepository
	kafkaWriter *kafka.Writer
}

// NewOrderService creates a new instance of OrderService. kafkaWriter may
// be nil; order events are then not published.
func NewOrderService(repo repository.OrderRepository, kafkaWriter *kafka.Writer) *OrderService {
	return &OrderService{repo: repo, kafkaWriter: kafkaWriter}
}

// CreateOrder stores the order and publishes a created event. The
// referenced user and product ids are taken as-is.
func (s *OrderService) CreateOrder(ctx context.Context, req *entity.OrderCreate) (*entity.Order, error) {
	order := &entity.Order{UserID: req.UserID, ProductID: req.ProductID}
	createdOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating order")
		return nil, err
	}

	s.publishOrderEvent(ctx, createdOrder, "created")

	return createdOrder, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]entity.Order, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing orders")
		return nil, err
	}

	return orders, nil
}

// publishOrderEvent is best-effort: the order is already committed, so a
// broker failure only logs.
func (s *OrderService) publishOrderEvent(ctx context.Context, order *entity.Order, key string) {
	if s.kafkaWriter == nil {
		return
	}

	orderJSON, err := json.Marshal(order)
	if err != nil {
		logger.Warn().Err(err).Msg("Error encoding order event")
		return
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("order-%s-%d", key, order.ID)),
		Value: orderJSON,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Warn().Err(err).Msgf("Error publishing order event for order %d", order.ID)
	}
}
