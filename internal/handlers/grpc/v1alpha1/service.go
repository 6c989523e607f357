package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "pwc.catalog.v1alpha1.CatalogService"

// CatalogServiceServer is the server API for the catalog service. Requests
// and responses are google.protobuf.Struct messages.
type CatalogServiceServer interface {
	CreateCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCharacters(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCharactersByName(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EquipItem(context.Context, *structpb.Struct) (*structpb.Struct, error)

	CreateItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListItems(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListItemsByName(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListItemsByCategory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListItemsByCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteItem(context.Context, *structpb.Struct) (*structpb.Struct, error)

	CreateMonster(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetMonster(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListMonsters(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListMonstersByName(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateMonster(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteMonster(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddDrop(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(CatalogServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unary(name string, method unaryMethod) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			server := srv.(CatalogServiceServer)
			if interceptor == nil {
				return method(server, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return method(server, ctx, req.(*structpb.Struct))
			})
		},
	}
}

// CatalogServiceDesc describes the catalog service for grpc.Server
var CatalogServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateCharacter", CatalogServiceServer.CreateCharacter),
		unary("GetCharacter", CatalogServiceServer.GetCharacter),
		unary("ListCharacters", CatalogServiceServer.ListCharacters),
		unary("ListCharactersByName", CatalogServiceServer.ListCharactersByName),
		unary("UpdateCharacter", CatalogServiceServer.UpdateCharacter),
		unary("DeleteCharacter", CatalogServiceServer.DeleteCharacter),
		unary("EquipItem", CatalogServiceServer.EquipItem),
		unary("CreateItem", CatalogServiceServer.CreateItem),
		unary("GetItem", CatalogServiceServer.GetItem),
		unary("ListItems", CatalogServiceServer.ListItems),
		unary("ListItemsByName", CatalogServiceServer.ListItemsByName),
		unary("ListItemsByCategory", CatalogServiceServer.ListItemsByCategory),
		unary("ListItemsByCharacter", CatalogServiceServer.ListItemsByCharacter),
		unary("UpdateItem", CatalogServiceServer.UpdateItem),
		unary("DeleteItem", CatalogServiceServer.DeleteItem),
		unary("CreateMonster", CatalogServiceServer.CreateMonster),
		unary("GetMonster", CatalogServiceServer.GetMonster),
		unary("ListMonsters", CatalogServiceServer.ListMonsters),
		unary("ListMonstersByName", CatalogServiceServer.ListMonstersByName),
		unary("UpdateMonster", CatalogServiceServer.UpdateMonster),
		unary("DeleteMonster", CatalogServiceServer.DeleteMonster),
		unary("AddDrop", CatalogServiceServer.AddDrop),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pwc/catalog/v1alpha1/catalog.proto",
}

// RegisterCatalogServiceServer registers the catalog service on s
func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogServiceDesc, srv)
}

// MethodNames lists every unary method in registration order
func MethodNames() []string {
	names := make([]string, 0, len(CatalogServiceDesc.Methods))
	for _, m := range CatalogServiceDesc.Methods {
		names = append(names, m.MethodName)
	}
	return names
}
