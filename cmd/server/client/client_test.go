package client

import (
	"bytes"
	"encoding/json"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/app"
	grpcv1alpha1 "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/handlers/grpc/v1alpha1"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/testutils"
)

type ClientTestSuite struct {
	suite.Suite
	server *grpc.Server
	addr   string
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	repos, err := app.SQLiteRepositories(testutils.CreateTestSQLite(s.T()))
	s.Require().NoError(err)
	services, err := app.NewServices(repos, nil, testutils.FixedClock())
	s.Require().NoError(err)

	handler, err := grpcv1alpha1.NewHandler(&grpcv1alpha1.HandlerConfig{
		CatalogService: services.Catalog,
		EquipService:   services.Equip,
		LootService:    services.Loot,
	})
	s.Require().NoError(err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	s.addr = lis.Addr().String()

	s.server = grpc.NewServer()
	grpcv1alpha1.RegisterCatalogServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Stop()
}

func (s *ClientTestSuite) run(args ...string) (map[string]any, error) {
	var out bytes.Buffer
	ClientCmd.SetOut(&out)
	ClientCmd.SetArgs(append(args, "--server", s.addr))
	if err := ClientCmd.Execute(); err != nil {
		return nil, err
	}

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(out.Bytes(), &resp))
	return resp, nil
}

func (s *ClientTestSuite) TestEquipFlow() {
	char, err := s.run("create-character", "--name", "Arin")
	s.Require().NoError(err)
	charID := char["character"].(map[string]any)["id"].(float64)

	item, err := s.run("create-item", "--name", "Dunkelklinge", "--category", "weapon", "--strength", "9")
	s.Require().NoError(err)
	itemID := item["item"].(map[string]any)["id"].(float64)

	equipped, err := s.run("equip", "--character-id", formatID(charID), "--item-id", formatID(itemID))
	s.Require().NoError(err)
	s.Len(equipped["character"].(map[string]any)["equipped"], 1)

	_, err = s.run("equip", "--character-id", formatID(charID), "--item-id", formatID(itemID))
	s.Require().Error(err)
	s.Contains(err.Error(), "ALREADY_EQUIPPED")
}

func (s *ClientTestSuite) TestCallWithData() {
	_, err := s.run("call", "CreateMonster", "--data", `{"name":"Goblin","health":30,"damage":5}`)
	s.Require().NoError(err)

	resp, err := s.run("call", "ListMonstersByName", "--data", `{"name":"Goblin"}`)
	s.Require().NoError(err)
	s.Len(resp["monsters"], 1)
}

func (s *ClientTestSuite) TestAddDropOutOfRange() {
	_, err := s.run("add-drop", "--monster-id", "1", "--item-id", "1", "--chance", "1.5")
	s.Require().Error(err)
	s.Contains(err.Error(), "OUT_OF_RANGE")
}

func formatID(id float64) string {
	b, _ := json.Marshal(int64(id))
	return string(b)
}
